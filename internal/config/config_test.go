package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("API_TIMEOUT", "")
	t.Setenv("API_TOKEN", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("APP_ENV", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Empty(t, cfg.API.Token)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "dev", cfg.App.Environment)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.internal/api")
	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("API_TOKEN", "secret")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "https://api.internal/api", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, "secret", cfg.API.Token)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoad_MalformedTimeoutFallsBack(t *testing.T) {
	t.Setenv("API_TIMEOUT", "soon")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := Load()

	assert.Error(t, err)
}
