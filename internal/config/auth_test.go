package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadAuthConfigFromEnv_DefaultValues(t *testing.T) {
	restore := setupAndRestoreEnv(t, map[string]string{})
	defer restore()

	cfg := LoadAuthConfigFromEnv()
	assert.Equal(t, "secret_key", cfg.Secret)
	assert.Equal(t, 3600*time.Second, cfg.AccessTokenTTL)
	assert.Equal(t, 86400*time.Second, cfg.RefreshTokenTTL)
}

func TestLoadAuthConfigFromEnv_CustomValues(t *testing.T) {
	restore := setupAndRestoreEnv(t, map[string]string{
		"JWT_SECRET":      "deployment-secret",
		"JWT_ACCESS_TTL":  "15m",
		"JWT_REFRESH_TTL": "72h",
	})
	defer restore()

	cfg := LoadAuthConfigFromEnv()
	assert.Equal(t, "deployment-secret", cfg.Secret)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 72*time.Hour, cfg.RefreshTokenTTL)
}

func TestAuthConfig_Validate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg := AuthConfig{
			Secret:          "test-secret",
			AccessTokenTTL:  time.Hour,
			RefreshTokenTTL: 24 * time.Hour,
		}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("empty secret", func(t *testing.T) {
		cfg := AuthConfig{
			AccessTokenTTL:  time.Hour,
			RefreshTokenTTL: 24 * time.Hour,
		}
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "secret")
	})

	t.Run("zero access TTL", func(t *testing.T) {
		cfg := AuthConfig{
			Secret:          "test-secret",
			RefreshTokenTTL: 24 * time.Hour,
		}
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "AccessTokenTTL")
	})

	t.Run("zero refresh TTL", func(t *testing.T) {
		cfg := AuthConfig{
			Secret:         "test-secret",
			AccessTokenTTL: time.Hour,
		}
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "RefreshTokenTTL")
	})
}
