// Package model defines the request and response shapes of the PDF Platform
// HTTP contract. Every payload exchanged with the server has an explicit
// struct here; no untyped passthrough maps.
package model

import (
	"time"

	"github.com/pdfplatform/pdfplat-go/internal/domain/auth"
)

// UserStatus values returned by the server.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
	UserStatusBanned   = "banned"
)

// User is the server-defined account record. Read-only from the client's
// perspective outside the admin user-management calls.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      auth.Role `json:"role"`
	Status    string    `json:"status"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Credentials carries the login form fields.
type Credentials struct {
	Username string
	Password string
}

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateUserRequest is the admin user update payload. Nil fields are omitted
// so the server only touches what was provided.
type UpdateUserRequest struct {
	Email    *string    `json:"email,omitempty"`
	Username *string    `json:"username,omitempty"`
	Password *string    `json:"password,omitempty"`
	Role     *auth.Role `json:"role,omitempty"`
	Status   *string    `json:"status,omitempty"`
	IsActive *bool      `json:"is_active,omitempty"`
}
