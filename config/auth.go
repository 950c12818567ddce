package config

import (
	"os"
	"path/filepath"
	"strings"
)

// AuthConfig contains session and token storage configuration.
type AuthConfig struct {
	// TokenFile is where the session token is persisted between runs.
	// When empty, a default under the user config directory is used.
	TokenFile string `env:"TOKEN_FILE"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	a.TokenFile = strings.TrimSpace(a.TokenFile)
	if a.TokenFile == "" {
		a.TokenFile = defaultTokenFile()
	}
}

// defaultTokenFile resolves the per-user token path. Falls back to the
// working directory when the user config dir cannot be determined.
func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".pdfplat-token"
	}
	return filepath.Join(dir, "pdfplat", "token")
}
