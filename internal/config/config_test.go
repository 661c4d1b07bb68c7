package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/storefront")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "postgres://localhost/storefront", cfg.DatabaseURL)
	require.Equal(t, "localhost:6379", cfg.RedisAddr)
	require.Equal(t, "", cfg.RedisPassword)
	require.Equal(t, 0, cfg.RedisDB)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, 1, cfg.WorkerCount)
	require.Equal(t, 24*time.Hour, cfg.SessionTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db/storefront")
	t.Setenv("REDIS_ADDR", "redis:6380")
	t.Setenv("REDIS_PASSWORD", "secret")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("PORT", "9090")
	t.Setenv("WORKER_COUNT", "4")
	t.Setenv("SESSION_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "secret", cfg.RedisPassword)
	require.Equal(t, 3, cfg.RedisDB)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, 4, cfg.WorkerCount)
	require.Equal(t, 30*time.Minute, cfg.SessionTTL)
}

func TestLoadMissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	os.Unsetenv("DATABASE_URL")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadBadSessionTTL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/storefront")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("SESSION_TTL", "soon")

	_, err := Load()
	require.Error(t, err)
}
