package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCmd_WritesConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd := newTestRoot(newInitCmd())
	cmd.SetArgs([]string{"init"})

	require.NoError(t, cmd.Execute())

	info, err := os.Stat(configFileName)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestInitCmd_RefusesToOverwrite(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, os.WriteFile(configFileName, []byte("version: 1\n"), 0o600))

	cmd := newTestRoot(newInitCmd())
	cmd.SetArgs([]string{"init"})

	require.Error(t, cmd.Execute())
}
