package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalConfigDir(t *testing.T) {
	t.Run("GIT_UTIL_HOME wins", func(t *testing.T) {
		t.Setenv("GIT_UTIL_HOME", "/custom/home")
		dir, err := GlobalConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/custom/home", dir)
	})

	t.Run("defaults under the user home", func(t *testing.T) {
		t.Setenv("GIT_UTIL_HOME", "")
		t.Setenv("HOME", "/home/tester")
		dir, err := GlobalConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/home/tester", ".git-util"), dir)
	})
}

func TestGlobalConfigPathAndLogDir(t *testing.T) {
	t.Setenv("GIT_UTIL_HOME", "/custom/home")

	path, err := GlobalConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/custom/home", "config.yaml"), path)

	logDir, err := LogDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/custom/home", "logs"), logDir)
}
