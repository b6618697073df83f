package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/git-util/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromPaths_Defaults(t *testing.T) {
	cfg, err := LoadFromPaths(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPaths_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPaths(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPaths_File(t *testing.T) {
	path := writeConfig(t, `
git:
  binary: /usr/local/bin/git
tools:
  filter: grep
  detect_timeout: 2s
log:
  oneline_count: 40
policy:
  delimiter: ","
`)

	cfg, err := LoadFromPaths(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "/usr/local/bin/git", cfg.Git.Binary)
	assert.Equal(t, "grep", cfg.Tools.Filter)
	assert.Equal(t, "sed", cfg.Tools.Sed, "unset keys keep their defaults")
	assert.Equal(t, 2*time.Second, cfg.Tools.DetectTimeout)
	assert.Equal(t, uint16(40), cfg.Log.OnelineCount)
	assert.Equal(t, ",", cfg.Policy.Delimiter)
}

func TestLoadFromPaths_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "tools:\n  filter: grep\n")
	t.Setenv("GIT_UTIL_TOOLS_FILTER", "ugrep")
	t.Setenv("GIT_UTIL_LOG_ONELINE_COUNT", "7")

	cfg, err := LoadFromPaths(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "ugrep", cfg.Tools.Filter)
	assert.Equal(t, uint16(7), cfg.Log.OnelineCount)
}

func TestLoadFromPaths_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  error
	}{
		{name: "zero count", content: "log:\n  oneline_count: 0\n", target: errors.ErrConfigInvalidLog},
		{name: "empty delimiter", content: "policy:\n  delimiter: \"\"\n", target: errors.ErrConfigInvalidPolicy},
		{name: "empty tool", content: "tools:\n  column: \"\"\n", target: errors.ErrConfigInvalidTools},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFromPaths(context.Background(), writeConfig(t, tc.content))
			require.ErrorIs(t, err, tc.target)
		})
	}
}

func TestLoadFromPaths_MalformedYAML(t *testing.T) {
	_, err := LoadFromPaths(context.Background(), writeConfig(t, "tools: [unclosed\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read global config")
}

func TestLoad_UsesAppHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("GIT_UTIL_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("log:\n  oneline_count: 3\n"), 0o600))

	cfg, err := Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint16(3), cfg.Log.OnelineCount)
}

func TestIsConfigNotFoundError(t *testing.T) {
	assert.False(t, isConfigNotFoundError(nil))
	assert.False(t, isConfigNotFoundError(os.ErrNotExist))
}
