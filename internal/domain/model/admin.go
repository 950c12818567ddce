package model

import "time"

// DashboardStats is the admin dashboard summary.
type DashboardStats struct {
	UserCount     int64   `json:"user_count"`
	DocumentCount int64   `json:"document_count"`
	DownloadCount int64   `json:"download_count"`
	Revenue       float64 `json:"revenue"`
}

// SystemSetting is a key/value platform setting managed from the admin area.
type SystemSetting struct {
	Key         string    `json:"key"`
	Value       string    `json:"value,omitempty"`
	Description string    `json:"description,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SystemSettingUpdate updates a single setting.
type SystemSettingUpdate struct {
	Key         string  `json:"key"`
	Value       *string `json:"value,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ShareRequest creates a secure download link for a document.
// When Password is empty the server generates one.
type ShareRequest struct {
	Password         string `json:"password,omitempty"`
	ExpiresInMinutes int    `json:"expires_in_minutes"`
	MaxDownloads     int    `json:"max_downloads"`
}

// ShareLink is the secure download link issued by the server.
type ShareLink struct {
	Token     string    `json:"token"`
	URL       string    `json:"url"`
	Password  string    `json:"password,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

// DownloadTokenStatus describes a secure link without releasing the file.
type DownloadTokenStatus struct {
	Valid            bool      `json:"valid"`
	DocumentTitle    string    `json:"document_title"`
	ExpiresAt        time.Time `json:"expires_at"`
	RequiresPassword bool      `json:"requires_password"`
}
