// Package auth contains domain-level types for authentication and
// authorization. It is pure and free of transport/adapter concerns.
package auth

import "strings"

// Role represents a server-assigned authorization role.
// Keep string form for easy persistence and comparison with server payloads.
type Role string

const (
	RoleUser       Role = "user"
	RoleVIP        Role = "vip"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// AdminRoles are the roles granting access to the admin route subtree.
func AdminRoles() []Role {
	return []Role{RoleAdmin, RoleSuperAdmin}
}

// Roles is the ordered set of roles held by the current session.
// An empty set means no profile has been fetched since the last logout.
type Roles []Role

// HasAny reports whether the set holds at least one of the required roles.
// Matching is case-insensitive on both sides.
func (r Roles) HasAny(required ...Role) bool {
	for _, held := range r {
		for _, want := range required {
			if strings.EqualFold(string(held), string(want)) {
				return true
			}
		}
	}
	return false
}

// Loaded reports whether a profile has populated the set.
func (r Roles) Loaded() bool { return len(r) > 0 }
