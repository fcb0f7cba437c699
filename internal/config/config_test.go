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
	path := writeConfig(t, `
environment: production
store:
  driver: redis
  redis:
    addr: cache:6379
    prefix: "u:"
    ttl: 5m
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, DriverRedis, cfg.Store.Driver)
	assert.Equal(t, "cache:6379", cfg.Store.Redis.Addr)
	assert.Equal(t, "u:", cfg.Store.Redis.Prefix)
	assert.Equal(t, 5*time.Minute, cfg.Store.Redis.TTL)
	assert.Equal(t, "users.db", cfg.Store.SQLite.Path)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "store:\n  driver: memory\n")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("STORE_SQLITE_PATH", "/tmp/override.db")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "/tmp/override.db", cfg.Store.SQLite.Path)
}

func TestLoad_UnknownDriver(t *testing.T) {
	path := writeConfig(t, "store:\n  driver: cassandra\n")
	_, err := Load(path)
	assert.ErrorContains(t, err, "cassandra")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestLoadEnv_Defaults(t *testing.T) {
	cfg, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, DriverMemory, cfg.Store.Driver)
}
