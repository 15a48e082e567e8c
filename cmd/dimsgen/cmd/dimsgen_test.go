package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		dimsgenInput, dimsgenOutput, dimsgenVerbosity = "definitions.toml", "", 0
	})
	var out bytes.Buffer
	DimsgenCmd.SetOut(&out)
	DimsgenCmd.SetArgs(args)
	err := DimsgenCmd.Execute()
	return out.String(), err
}

func TestGenerateAndCheck(t *testing.T) {
	input := filepath.Join("..", "..", "..", "internal", "gen", "testdata", "minimal.yaml")
	output := filepath.Join(t.TempDir(), "zz_generated.go")

	stdout, err := execute(t, "--input", input)
	require.NoError(t, err)
	assert.Contains(t, stdout, "package lengths")

	_, err = execute(t, "--input", input, "--output", output)
	require.NoError(t, err)
	written, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, stdout, string(written))

	out, err := execute(t, "check", "--input", input, "--output", output)
	require.NoError(t, err)
	assert.Contains(t, out, "up to date")

	require.NoError(t, os.WriteFile(output, []byte("package lengths\n"), 0644))
	out, err = execute(t, "check", "--input", input, "--output", output)
	assert.Error(t, err)
	assert.Contains(t, out, "out of date")
}

func TestBaseUnitsUpToDate(t *testing.T) {
	root := filepath.Join("..", "..", "..", "baseunits")
	_, err := execute(t, "check", "--input", filepath.Join(root, "definitions.toml"), "--output", filepath.Join(root, "zz_generated.go"))
	assert.NoError(t, err)
}

func TestMissingInput(t *testing.T) {
	_, err := execute(t, "--input", filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
