package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsComplete(t *testing.T) {
	cfg := Default()

	assert.NotEmpty(t, cfg.LogFile)
	assert.NotEmpty(t, cfg.ReportFile)
	require.Len(t, cfg.Prerequisites, 3)
	for _, p := range cfg.Prerequisites {
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Probe)
		assert.NotEmpty(t, p.MinVersion)
	}
	assert.NotEmpty(t, cfg.Editor.Probe)
	assert.NotEmpty(t, cfg.Editor.Install)
	assert.NotEmpty(t, cfg.Font.URL)
	assert.NotEmpty(t, cfg.Font.CacheRefresh)
	assert.NotEmpty(t, cfg.Distribution.Repo)
	assert.NotEmpty(t, cfg.Distribution.Ref)
	require.Len(t, cfg.Configs, 3)
	assert.Len(t, cfg.LanguageServers.Packages, 2)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesOnTopOfDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_file: custom.log
font:
  dir: /srv/fonts
prerequisites:
  - name: OnlyOne
    probe: onlyone --version
    min_version: 1.0.0
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	// Overridden fields take the file's values
	assert.Equal(t, "custom.log", cfg.LogFile)
	assert.Equal(t, "/srv/fonts", cfg.Font.Dir)
	require.Len(t, cfg.Prerequisites, 1)
	assert.Equal(t, "OnlyOne", cfg.Prerequisites[0].Name)

	// Omitted fields keep their defaults, including siblings of overridden ones
	assert.Equal(t, Default().ReportFile, cfg.ReportFile)
	assert.Equal(t, Default().Font.URL, cfg.Font.URL)
	assert.Equal(t, Default().Editor, cfg.Editor)
}

func TestLoadRejectsBrokenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_file: [unclosed"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandHome("~/.config/nvim")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config/nvim"), got)

	got, err = ExpandHome("~")
	require.NoError(t, err)
	assert.Equal(t, home, got)

	got, err = ExpandHome("/opt/fonts")
	require.NoError(t, err)
	assert.Equal(t, "/opt/fonts", got)

	// "~user" style paths are not home-relative and pass through untouched
	got, err = ExpandHome("~other/x")
	require.NoError(t, err)
	assert.Equal(t, "~other/x", got)
}
