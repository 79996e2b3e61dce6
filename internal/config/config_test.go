package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for key := range defaults {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	assert.Equal(t, "0.0.0.0:5000", cfg.HTTP.Addr())
	assert.Equal(t, "release", cfg.HTTP.GinMode)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.Empty(t, cfg.HTTP.TrustedProxies)
	assert.Equal(t, "http://localhost:3000", cfg.HTTP.PublicURL)
	assert.False(t, cfg.HTTP.DebugRoutes)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 5, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Postgres.Enabled())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("PUBLIC_URL", "https://boohoo.test/")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1, 172.16.0.0/12")
	t.Setenv("DEBUG_ROUTES", "true")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("RATE_LIMIT_REQUESTS", "10")
	t.Setenv("RATE_LIMIT_WINDOW", "30")
	t.Setenv("SHUTDOWN_TIMEOUT", "2s")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("DB_DSN", "postgres://u:p@db/boohoo")

	cfg := FromEnv()

	assert.Equal(t, "8081", cfg.HTTP.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "https://boohoo.test", cfg.HTTP.PublicURL)
	assert.Equal(t, []string{"10.0.0.1", "172.16.0.0/12"}, cfg.HTTP.TrustedProxies)
	assert.True(t, cfg.HTTP.DebugRoutes)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 10, cfg.RateLimit.Requests)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, 2*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.True(t, cfg.Postgres.Enabled())
}

func TestFromEnvRejectsNonPositive(t *testing.T) {
	t.Setenv("RATE_LIMIT_REQUESTS", "-3")
	t.Setenv("RATE_LIMIT_WINDOW", "soon")

	cfg := FromEnv()

	assert.Equal(t, 5, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_PORT=9090\nLOG_FORMAT=text\n"), 0o600))
	t.Setenv("HTTP_PORT", "")
	t.Setenv("LOG_FORMAT", "")
	// godotenv does not override variables that are already present
	require.NoError(t, os.Unsetenv("HTTP_PORT"))
	require.NoError(t, os.Unsetenv("LOG_FORMAT"))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestGinModeFallsBackToRelease(t *testing.T) {
	assert.Equal(t, "debug", ginMode("DEBUG"))
	assert.Equal(t, "test", ginMode("test"))
	assert.Equal(t, "release", ginMode("verbose"))
}
