package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearEnv() {
	for _, key := range []string{
		"PORT", "GO_ENV", "BACKEND_API_URL", "EMAIL_ENDPOINT_URL",
		"NOTIFY_INTERVAL_MINUTES", "LOG_LEVEL", "COMPANY_NAME", "COMPANY_NIT",
		"COMPANY_ADDRESS", "COMPANY_PHONE", "COMPANY_EMAIL", "COMPANY_LOGO_URL",
	} {
		os.Unsetenv(key)
	}
}

func TestLoadWithRequiredVariables(t *testing.T) {
	clearEnv()
	os.Setenv("GO_ENV", "test")
	os.Setenv("BACKEND_API_URL", "http://backend.local:3000")
	os.Setenv("COMPANY_NAME", "Taller MotoMax")
	defer clearEnv()

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "http://backend.local:3000", cfg.BackendAPIURL)
	assert.Equal(t, "Taller MotoMax", cfg.Company.Name)
	assert.Equal(t, "8080", cfg.Port, "port falls back to the default")
	assert.Equal(t, 5, cfg.NotifyIntervalMinutes, "poll interval defaults to 5 minutes")
	assert.True(t, cfg.IsTest())
	assert.False(t, cfg.IsProduction())
}

func TestLoadFailsWithoutBackendURL(t *testing.T) {
	clearEnv()
	os.Setenv("GO_ENV", "test")
	defer clearEnv()

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "BACKEND_API_URL")
}

func TestValidateRejectsNonPositiveInterval(t *testing.T) {
	cfg := &Config{
		BackendAPIURL:         "http://backend.local:3000",
		NotifyIntervalMinutes: 0,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "NOTIFY_INTERVAL_MINUTES")
}

func TestGetEnvIntIgnoresGarbage(t *testing.T) {
	os.Setenv("NOTIFY_INTERVAL_MINUTES", "not-a-number")
	defer os.Unsetenv("NOTIFY_INTERVAL_MINUTES")

	assert.Equal(t, 5, getEnvInt("NOTIFY_INTERVAL_MINUTES", 5))
}

func TestSetAndGetConfig(t *testing.T) {
	previous := GetConfig()
	defer SetConfig(previous)

	cfg := &Config{GoEnv: "development"}
	SetConfig(cfg)
	assert.Same(t, cfg, GetConfig())
	assert.True(t, cfg.IsDevelopment())
}
