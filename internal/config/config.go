package config

import "fmt"

// Config holds application configuration.
type Config struct {
	// Server holds HTTP server configuration.
	Server ServerConfig
	// Logger holds logger configuration.
	Logger LoggerConfig
	// Auth holds token issuance configuration.
	Auth AuthConfig
	// GinMode is the Gin framework mode (debug, release, test).
	GinMode string
	// InviteBaseURL is the public base URL invite links are derived from.
	InviteBaseURL string
}

// LoadFromEnv loads all configuration from environment variables.
func LoadFromEnv() Config {
	return Config{
		Server:        LoadServerConfigFromEnv(),
		Logger:        LoadLoggerConfigFromEnv(),
		Auth:          LoadAuthConfigFromEnv(),
		GinMode:       GetEnv("GIN_MODE", "release"),
		InviteBaseURL: GetEnv("INVITE_BASE_URL", "http://site.ru"),
	}
}

// Validate validates all configuration.
func (c Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger config validation failed: %w", err)
	}

	if err := c.Auth.Validate(); err != nil {
		return fmt.Errorf("auth config validation failed: %w", err)
	}

	validGinModes := map[string]bool{
		"debug":   true,
		"release": true,
		"test":    true,
	}
	if !validGinModes[c.GinMode] {
		return fmt.Errorf("invalid GIN_MODE: %s (must be: debug, release, test)", c.GinMode)
	}

	return nil
}
