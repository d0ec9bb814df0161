package config_test

import (
	"testing"

	"caldav-bridge/core/config"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvironment_Defaults(t *testing.T) {
	cfg, err := config.FromEnvironment(map[string]string{})
	assert.NoError(t, err)

	assert.Equal(t, "8089", cfg.Server.Port)
	assert.Equal(t, "calendar:app", cfg.Server.EntryPoint)
	assert.Equal(t, "https://caldav.icloud.com", cfg.Upstream.BaseURL)
	assert.Equal(t, 30, cfg.Upstream.TimeoutSeconds)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Server.ApiKey)
	assert.Empty(t, cfg.Upstream.AppleID)
}

func TestFromEnvironment_FlatNamesOverride(t *testing.T) {
	cfg, err := config.FromEnvironment(map[string]string{
		"PORT":               "9999",
		"API_KEY":            "secret",
		"BASE_URL":           "https://dav.example.com",
		"APPLE_ID":           "user@example.com",
		"APPLE_APP_PASSWORD": "abcd-efgh",
		"HTTP_TIMEOUT":       "5",
		"LOG_LEVEL":          "debug",
	})
	assert.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, "secret", cfg.Server.ApiKey)
	assert.Equal(t, "https://dav.example.com", cfg.Upstream.BaseURL)
	assert.Equal(t, "user@example.com", cfg.Upstream.AppleID)
	assert.Equal(t, "abcd-efgh", cfg.Upstream.ApplePassword)
	assert.Equal(t, 5, cfg.Upstream.TimeoutSeconds)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestFromEnvironment_UnknownVariablesIgnored(t *testing.T) {
	cfg, err := config.FromEnvironment(map[string]string{
		"SOMETHING_ELSE": "value",
	})
	assert.NoError(t, err)
	assert.Equal(t, "8089", cfg.Server.Port)
}
