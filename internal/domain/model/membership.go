package model

import "time"

// MembershipType values returned by the server.
const (
	MembershipFree     = "free"
	MembershipNormal   = "normal"
	MembershipLifetime = "lifetime"
)

// Membership carries the download allowance for the current user.
// Lifetime memberships ignore the quota server-side.
type Membership struct {
	ID            int64      `json:"id"`
	Type          string     `json:"type"`
	DownloadQuota int        `json:"download_quota"`
	DownloadUsed  int        `json:"download_used"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

// Remaining returns the unused download allowance, never negative.
func (m Membership) Remaining() int {
	if m.DownloadUsed >= m.DownloadQuota {
		return 0
	}
	return m.DownloadQuota - m.DownloadUsed
}

// RedeemRequest redeems a membership code.
type RedeemRequest struct {
	Code string `json:"code"`
}
