package config

import (
	"fmt"
	"time"
)

// AuthConfig holds token issuance configuration.
type AuthConfig struct {
	// Secret is the HS256 signing secret for access tokens.
	Secret string
	// AccessTokenTTL is the access token lifetime.
	AccessTokenTTL time.Duration
	// RefreshTokenTTL is the refresh window. No refresh endpoint exists yet;
	// the value is carried for parity with the deployed configuration.
	RefreshTokenTTL time.Duration
}

// LoadAuthConfigFromEnv loads auth configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		Secret:          GetEnv("JWT_SECRET", "secret_key"),
		AccessTokenTTL:  GetEnvDuration("JWT_ACCESS_TTL", 3600*time.Second),
		RefreshTokenTTL: GetEnvDuration("JWT_REFRESH_TTL", 86400*time.Second),
	}
}

// Validate validates auth configuration.
func (c AuthConfig) Validate() error {
	if c.Secret == "" {
		return fmt.Errorf("JWT secret must not be empty")
	}
	if c.AccessTokenTTL <= 0 {
		return fmt.Errorf("AccessTokenTTL must be greater than 0")
	}
	if c.RefreshTokenTTL <= 0 {
		return fmt.Errorf("RefreshTokenTTL must be greater than 0")
	}
	return nil
}
