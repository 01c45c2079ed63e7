package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NoFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "expenses.csv", cfg.General.StoreFile)
	assert.Equal(t, "expense_report_export.csv", cfg.General.ExportFile)
	assert.False(t, cfg.General.StrictParse)
	assert.Equal(t, "flexoki-dark", cfg.Appearance.Theme)
	assert.False(t, Exists())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	want := DefaultConfig()
	want.General.StoreFile = "/tmp/ledger.csv"
	want.General.StrictParse = true
	want.Appearance.Theme = "terminal"

	require.NoError(t, Save(want))
	assert.True(t, Exists())

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "xpense", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("[appearance]\ntheme = \"terminal\"\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)

	// Unset sections fall back to defaults.
	assert.Equal(t, "expenses.csv", cfg.General.StoreFile)
	assert.Equal(t, "terminal", cfg.Appearance.Theme)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "xpense", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0o600))

	_, err := Load()
	assert.Error(t, err)
}
