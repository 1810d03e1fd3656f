package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
APP_PORT: "8080"
DB_DRIVER: sqlite
SQLITE_PATH: /tmp/test.db
AUTH_PROVIDER: jwt
JWT_SECRET: from-file
RATE_LIMIT_MAX: 50
`), 0o600))

	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("RATE_LIMIT_MAX", "7")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "/tmp/test.db", cfg.SQLitePath)
	assert.Equal(t, "jwt", cfg.AuthProvider)
	assert.Equal(t, "from-env", cfg.JWTSecret)
	assert.Equal(t, 7, cfg.RateLimitMax)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.MailingEnabled())
	assert.False(t, cfg.StorageEnabled())
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.AppPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "firebase", cfg.AuthProvider)
}

func TestLoadConfig_BadEnvInt(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX", "lots")
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT: [unterminated"), 0o600))
	_, err := LoadConfig(path)
	assert.Error(t, err)
}
