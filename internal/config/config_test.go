package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults without a file", func(t *testing.T) {
		// Given: no config file
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading
		conf, err := Load(path)

		// Then: defaults are applied
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "9091", conf.SocketPort)
		assert.Equal(t, SessionStoreMemory, conf.Session.Store)
		assert.Equal(t, 30*time.Minute, conf.Session.TTL)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Empty(t, conf.AllowedOrigins)
	})

	t.Run("Reads the yaml file", func(t *testing.T) {
		// Given: a config file selecting redis
		path := writeConfig(t, `
log-level: debug
http-port: "8080"
session:
  store: redis
  ttl: 5m
redis:
  host: cache
  port: "6380"
`)

		// When: loading
		conf, err := Load(path)

		// Then: the file values are used
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, SessionStoreRedis, conf.Session.Store)
		assert.Equal(t, 5*time.Minute, conf.Session.TTL)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Reads allowed origins from the file", func(t *testing.T) {
		path := writeConfig(t, "allowed-origins:\n  - http://localhost:3000\n  - https://ttt.example.com\n")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"http://localhost:3000", "https://ttt.example.com"}, conf.AllowedOrigins)
	})

	t.Run("Reads allowed origins from the environment", func(t *testing.T) {
		t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000,https://ttt.example.com")

		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.NoError(t, err)
		assert.Equal(t, []string{"http://localhost:3000", "https://ttt.example.com"}, conf.AllowedOrigins)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "http-port: \"8080\"\n")
		t.Setenv("HTTP_PORT", "7070")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "7070", conf.HTTPPort)
	})

	t.Run("Rejects an unknown session store", func(t *testing.T) {
		path := writeConfig(t, "session:\n  store: disk\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrUnknownSessionStore)
	})

	t.Run("Rejects an unknown log level", func(t *testing.T) {
		path := writeConfig(t, "log-level: loud\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrUnknownLogLevel)
	})

	t.Run("MustLoad panics on invalid config", func(t *testing.T) {
		path := writeConfig(t, "log-level: loud\n")

		assert.Panics(t, func() { MustLoad(path) })
	})
}
