package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roadnav/config"
)

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roadnav.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"source: sqlite\ndata_path: campus.db\n"), 0o644))

	cfg, err := config.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, config.SourceSQLite, cfg.Source)
	assert.Equal(t, "campus.db", cfg.DataPath)
	// unset fields fall back to defaults
	assert.Equal(t, "route.svg", cfg.RenderPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromPath_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roadnav.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source: [broken"), 0o644))

	_, err := config.LoadFromPath(path)
	assert.Error(t, err)
}

func TestValidate_UnknownSource(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Source = "carrier-pigeon"
	assert.Error(t, cfg.Validate())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := &config.Config{
		Source:     config.SourceYAML,
		DataPath:   "campus.yaml",
		RenderPath: "out.svg",
		LogLevel:   "debug",
	}
	require.NoError(t, want.Save(path))

	got, err := config.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elsewhere.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source: yaml\n"), 0o644))
	t.Setenv("ROADNAV_CONFIG", path)

	cfg, used, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, config.SourceYAML, cfg.Source)
}
