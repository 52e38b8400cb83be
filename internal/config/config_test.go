package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	assert.Equal(t, "man", cfg.Render.Source)
	assert.Equal(t, "man", cfg.Render.ManPath)
	assert.Equal(t, "off", cfg.Log.Level)

	// Keymap defaults follow pager conventions.
	assert.Equal(t, "q", cfg.Keys.Quit)
	assert.Equal(t, ":", cfg.Keys.Command)
	assert.Equal(t, "/", cfg.Keys.Search)
	assert.Equal(t, "n", cfg.Keys.NextMatch)
	assert.Equal(t, "N", cfg.Keys.PrevMatch)
	assert.Equal(t, "tab", cfg.Keys.TabNext)
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	tempDir := t.TempDir()
	t.Chdir(tempDir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig().Keys, cfg.Keys)
	assert.Equal(t, "man", cfg.Render.Source)
}

func TestLoadExplicitFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "config.toml")

	content := `
[render]
source = "markdown"
docs_dir = "` + tempDir + `"

[keys]
quit = "x"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "markdown", cfg.Render.Source)
	assert.Equal(t, tempDir, cfg.Render.DocsDir)
	assert.Equal(t, "x", cfg.Keys.Quit)
	// Unspecified keys keep their defaults.
	assert.Equal(t, "/", cfg.Keys.Search)
}

func TestGenerateAndReloadConfig(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "generated", "config.toml")

	require.NoError(t, GenerateDefaultConfig(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig().Keys, cfg.Keys)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "", expandPath(""))
	assert.Equal(t, filepath.Join(home, "docs"), expandPath("~/docs"))
	assert.True(t, filepath.IsAbs(expandPath("relative/path")))
}
