package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snip/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, config.BackendMemory, cfg.Store.Backend)
	assert.Equal(t, 2*time.Second, cfg.Store.Timeout)
	assert.Equal(t, "http://localhost:8080", cfg.App.BaseURL)
	assert.True(t, cfg.Validation.AllowPrivateIPs)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("STORE_TIMEOUT", "500ms")
	t.Setenv("BASE_URL", "https://snip.example")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, config.BackendRedis, cfg.Store.Backend)
	assert.Equal(t, 500*time.Millisecond, cfg.Store.Timeout)
	assert.Equal(t, "https://snip.example", cfg.App.BaseURL)
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("REDIS_ADDR=redis.internal:6380\nBASE_URL=http://from-file\n"), 0o600))

	t.Setenv("ENV_FILE", path)
	// Real environment takes precedence over the file.
	t.Setenv("BASE_URL", "http://from-env")
	t.Cleanup(func() { _ = os.Unsetenv("REDIS_ADDR") })

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "redis.internal:6380", cfg.Redis.Addr)
	assert.Equal(t, "http://from-env", cfg.App.BaseURL)
}

func TestLoad_UnknownBackend(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("STORE_BACKEND", "cassandra")

	_, err := config.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrUnknownBackend)
}

func TestPostgresConfig_DSN(t *testing.T) {
	cfg := config.PostgresConfig{
		Host:     "db",
		Port:     5433,
		User:     "u",
		Password: "p",
		DBName:   "snip",
		SSLMode:  "disable",
		MaxConns: 4,
	}

	assert.Equal(t, "host=db port=5433 user=u password=p dbname=snip sslmode=disable pool_max_conns=4", cfg.DSN())
}
