package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildWithoutFlags exercises the builder with the env and defaults sources
// only; ParseFlags touches the process-global flag set and cannot be called
// repeatedly inside one test binary.
func buildWithoutFlags(t *testing.T) (*StructuredConfig, error) {
	t.Helper()
	return newConfigBuilder().
		withEnv().
		withDefaults().
		build()
}

func TestBuild_DefaultsApplied(t *testing.T) {
	cfg, err := buildWithoutFlags(t)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 720*time.Hour, cfg.Auth.SessionDuration)
	assert.Equal(t, 168*time.Hour, cfg.Auth.SessionRenewalThreshold)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Hour, cfg.Workers.SessionPurgeInterval)
	assert.False(t, cfg.Auth.SecureCookiesEnabled())
}

func TestBuild_SecureCookiesDefaultInProduction(t *testing.T) {
	t.Setenv("APP_ENVIRONMENT", "production")

	cfg, err := buildWithoutFlags(t)
	require.NoError(t, err)

	require.NotNil(t, cfg.Auth.SecureCookies)
	assert.True(t, cfg.Auth.SecureCookiesEnabled())
}

func TestBuild_SecureCookiesExplicitlyDisabledInProduction(t *testing.T) {
	t.Setenv("APP_ENVIRONMENT", "production")
	t.Setenv("AUTH_SECURE_COOKIES", "false")

	cfg, err := buildWithoutFlags(t)
	require.NoError(t, err)

	require.NotNil(t, cfg.Auth.SecureCookies)
	assert.False(t, cfg.Auth.SecureCookiesEnabled())
}

func TestBuild_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("AUTH_SESSION_DURATION", "48h")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9999")
	t.Setenv("STORAGE_DB_DRIVER", "pgx")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/vitalog")

	cfg, err := buildWithoutFlags(t)
	require.NoError(t, err)

	assert.Equal(t, 48*time.Hour, cfg.Auth.SessionDuration)
	assert.Equal(t, "0.0.0.0:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://localhost/vitalog", cfg.Storage.DB.DSN)
	// untouched fields still fall back to defaults
	assert.Equal(t, 168*time.Hour, cfg.Auth.SessionRenewalThreshold)
}

func TestValidate_RejectsUnknownDriver(t *testing.T) {
	cfg := &StructuredConfig{
		Storage: Storage{DB: DB{Driver: "mysql", DSN: "dsn"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
		Auth:    Auth{SessionDuration: time.Hour, SessionRenewalThreshold: time.Minute},
	}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestValidate_RejectsThresholdAboveDuration(t *testing.T) {
	cfg := &StructuredConfig{
		Storage: Storage{DB: DB{Driver: "pgx", DSN: "dsn"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
		Auth:    Auth{SessionDuration: time.Hour, SessionRenewalThreshold: 2 * time.Hour},
	}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAuthConfigs)
}

func TestValidate_AcceptsCompleteConfig(t *testing.T) {
	cfg := &StructuredConfig{
		Storage: Storage{DB: DB{Driver: "sqlite3", DSN: "file:test.db"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
		Auth:    Auth{SessionDuration: 720 * time.Hour, SessionRenewalThreshold: 168 * time.Hour},
	}
	assert.NoError(t, cfg.validate())
}
