package warningsfile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/leave-tracker/internal/infrastructure/warningsfile"
)

func TestParse(t *testing.T) {
	in := `
warnings:
  fr:
    - "Strikes expected."
    - "Carry ID at all times."
  KE:
    - "Heavy rains in April."
`
	got, err := warningsfile.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"FR": {"Strikes expected.", "Carry ID at all times."},
		"KE": {"Heavy rains in April."},
	}, got)
}

func TestParse_Invalido(t *testing.T) {
	cases := map[string]string{
		"yaml roto":      "warnings: [",
		"sin warnings":   "other: 1",
		"código largo":   "warnings:\n  FRA:\n    - x\n",
		"texto vacío":    "warnings:\n  FR:\n    - \"\"\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := warningsfile.Parse(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warnings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("warnings:\n  DE:\n    - \"Rail works.\"\n"), 0o600))
	got, err := warningsfile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Rail works."}, got["DE"])

	_, err = warningsfile.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
