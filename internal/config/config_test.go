package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "https://erp-r0hx.onrender.com/api", cfg.API.BaseURL)
	assert.Equal(t, 10, cfg.UI.PageSize)
	assert.Equal(t, "auto", cfg.UI.Theme)
	assert.False(t, cfg.Logging.DebugMode)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api:
  base_url: http://localhost:9999/api
ui:
  page_size: 25
  theme: dark
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/api", cfg.API.BaseURL)
	assert.Equal(t, 25, cfg.UI.PageSize)
	assert.Equal(t, "dark", cfg.UI.Theme)
	// Untouched sections keep defaults.
	assert.Equal(t, "15s", cfg.API.Timeout)
}

func TestEnvOverridesBeatFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  base_url: http://file/api\n"), 0o644))

	t.Setenv("SALESDASH_API_URL", "http://env/api")
	t.Setenv("SALESDASH_PAGE_SIZE", "7")
	t.Setenv("SALESDASH_DEBUG", "1")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env/api", cfg.API.BaseURL)
	assert.Equal(t, 7, cfg.UI.PageSize)
	assert.True(t, cfg.Logging.DebugMode)
}

func TestBadPageSizeEnvIgnored(t *testing.T) {
	t.Setenv("SALESDASH_PAGE_SIZE", "not-a-number")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.UI.PageSize)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := DefaultConfig()
	cfg.UI.PageSize = 15
	cfg.State.Dir = "/tmp/salesdash-test"
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 15, got.UI.PageSize)
	assert.Equal(t, "/tmp/salesdash-test", got.State.Dir)
}

func TestMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{not yaml"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
