package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_HOST", "")
	t.Setenv("PORT", "")
	t.Setenv("APP_DEBUG", "")
	t.Setenv("DATA_DIR", "")

	cfg := Load()

	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.True(t, cfg.Debug)
	assert.Equal(t, "./dados", cfg.DataDir)
}

func TestLoadEnvFile(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("APP_DEBUG", "")
	os.Unsetenv("PORT")
	os.Unsetenv("APP_DEBUG")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=9090\nAPP_DEBUG=false\n"), 0644))

	require.NoError(t, LoadEnv(path))
	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.False(t, cfg.Debug)
}

func TestLoadEnvMissingFile(t *testing.T) {
	assert.NoError(t, LoadEnv(filepath.Join(t.TempDir(), ".env")))
}
