package config

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - api.go: API endpoint configuration
//   - auth.go: Session and token storage configuration
type AppConfig struct {
	// IsDev controls development mode behavior (verbose logging, plain log output).
	// Set DEV=true for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// API endpoint configuration
	API APIConfig `envPrefix:"API_"`

	// Session and token storage configuration
	Auth AuthConfig `envPrefix:"AUTH_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.API.Sanitize()
	c.Auth.Sanitize()
}
