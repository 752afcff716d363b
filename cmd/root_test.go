package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunInit_CreatesConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	err := runInit(initCmd, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(".draftai", "config.yaml"))
	require.NoError(t, err)
	require.Contains(t, string(data), "server_url")
}

func TestRunInit_RefusesToOverwrite(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, runInit(initCmd, nil))

	err := runInit(initCmd, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")
}
