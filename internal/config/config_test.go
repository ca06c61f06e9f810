package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, "/api/v1", cfg.API.Prefix)
	assert.Equal(t, 15*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "/auth/login", cfg.Auth.LoginPath)
	assert.Equal(t, "/auth/refresh", cfg.Auth.RefreshPath)
	assert.Equal(t, 10*time.Second, cfg.Auth.RefreshTimeout)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "http://localhost:8000/api/v1", cfg.Origin())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.oncoflow.example/")
	t.Setenv("API_PREFIX", "v2")
	t.Setenv("API_REQUEST_TIMEOUT", "3s")
	t.Setenv("AUTH_WAITER_DEADLINE", "20")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	// Trailing slash trimmed, missing leading slash added.
	assert.Equal(t, "https://api.oncoflow.example", cfg.API.BaseURL)
	assert.Equal(t, "/v2", cfg.API.Prefix)
	assert.Equal(t, 3*time.Second, cfg.API.RequestTimeout)
	// Bare integers are interpreted as seconds.
	assert.Equal(t, 20*time.Second, cfg.Auth.WaiterDeadline)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "https://api.oncoflow.example/v2", cfg.Origin())
}
