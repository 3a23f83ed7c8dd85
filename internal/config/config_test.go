package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("API_BASE_URL", "")
	t.Setenv("SESSION_RESTORE_MODE", "")

	cfg := Load()
	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.Development)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	assert.Equal(t, RestoreModeFetch, cfg.SessionRestoreMode)
	assert.Equal(t, 5, cfg.LoginRateLimit)
	assert.Zero(t, cfg.APITimeout)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("API_BASE_URL", "https://api.chargili.test/")
	t.Setenv("API_TIMEOUT", "5s")
	t.Setenv("SESSION_RESTORE_MODE", "legacy")
	t.Setenv("AUDIT_ENABLED", "true")
	t.Setenv("REDIS_DB", "3")

	cfg := Load()
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.Development)
	assert.Equal(t, "https://api.chargili.test", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.APITimeout)
	assert.Equal(t, RestoreModeLegacy, cfg.SessionRestoreMode)
	assert.True(t, cfg.AuditEnabled)
	assert.Equal(t, 3, cfg.RedisDB)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"bad scheme", func(c *Config) { c.APIBaseURL = "ftp://x" }, "http(s)"},
		{"unknown restore mode", func(c *Config) { c.SessionRestoreMode = "token" }, "SESSION_RESTORE_MODE"},
		{"rate limit", func(c *Config) { c.LoginRateLimit = 0 }, "LOGIN_RATE_LIMIT"},
		{"negative ttl", func(c *Config) { c.SessionTTL = -time.Second }, "negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
