package config

import (
	"strings"
	"time"
)

// DefaultRequestTimeout is the fixed ceiling applied to every API call.
// There is no per-call retry or backoff; a single attempt per call.
const DefaultRequestTimeout = 120 * time.Second

// APIConfig contains PDF Platform API endpoint configuration.
type APIConfig struct {
	// BaseURL is the server origin, e.g. "https://pdf.example.com".
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8000"`

	// BasePath is the path prefix all endpoints share.
	BasePath string `env:"BASE_PATH" envDefault:"/api/v1"`

	// Timeout is the HTTP client timeout ceiling.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"120s"`
}

// Sanitize applies guardrails to API configuration values.
func (a *APIConfig) Sanitize() {
	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")

	a.BasePath = strings.TrimSpace(a.BasePath)
	if a.BasePath == "" {
		a.BasePath = "/api/v1"
	}
	if !strings.HasPrefix(a.BasePath, "/") {
		a.BasePath = "/" + a.BasePath
	}
	a.BasePath = strings.TrimRight(a.BasePath, "/")

	if a.Timeout <= 0 {
		a.Timeout = DefaultRequestTimeout
	}
}

// Prefix returns the joined origin and path prefix for request URLs.
func (a APIConfig) Prefix() string {
	return a.BaseURL + a.BasePath
}
