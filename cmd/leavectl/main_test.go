package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcomandos(t *testing.T) {
	root := newRootCmd()
	for _, path := range [][]string{
		{"migrate", "up"},
		{"migrate", "down"},
		{"create-admin"},
		{"import-warnings"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestImportWarnings_ExigeArchivo(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"import-warnings"})
	assert.Error(t, root.Execute())
}

func TestCreateAdmin_FlagsRequeridos(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"create-admin", "--email", "ada@example.org"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}
