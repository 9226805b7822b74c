package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{
		"JWT_ACCESS_SECRET":  "a",
		"JWT_REFRESH_SECRET": "r",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.HTTPPort)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.True(t, cfg.Storage.SeedOnStart)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiresIn)
	assert.Equal(t, 10*time.Minute, cfg.Redis.CacheTTL)
}

func TestFromEnv_MissingSecrets(t *testing.T) {
	_, err := FromEnv(envOf(map[string]string{}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errMissingRequiredEnv))
	assert.Contains(t, err.Error(), "JWT_ACCESS_SECRET")
	assert.Contains(t, err.Error(), "JWT_REFRESH_SECRET")
}

func TestFromEnv_PostgresRequiresDatabase(t *testing.T) {
	_, err := FromEnv(envOf(map[string]string{
		"JWT_ACCESS_SECRET":  "a",
		"JWT_REFRESH_SECRET": "r",
		"STORAGE_DRIVER":     "postgres",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_HOST")
}

func TestFromEnv_InvalidValues(t *testing.T) {
	_, err := FromEnv(envOf(map[string]string{
		"JWT_ACCESS_SECRET":     "a",
		"JWT_REFRESH_SECRET":    "r",
		"STORAGE_DRIVER":        "mongo",
		"JWT_ACCESS_EXPIRES_IN": "soon",
	}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errInvalidEnv))
	assert.Contains(t, err.Error(), "STORAGE_DRIVER")
	assert.Contains(t, err.Error(), "JWT_ACCESS_EXPIRES_IN")
}
