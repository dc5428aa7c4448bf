package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_EmptyEnvironment(t *testing.T) {
	cfg := &StructuredConfig{}

	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_NestedPrefixes(t *testing.T) {
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "env-secret")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env-host/auth")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "45s")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "env-secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "postgres://env-host/auth", cfg.Storage.DB.DSN)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
}

func TestParseEnv_JSONFilePath(t *testing.T) {
	t.Setenv("CONFIG", "/etc/auth/config.json")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/etc/auth/config.json", cfg.JSONFilePath)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("AUTH_TOKEN_DURATION", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
