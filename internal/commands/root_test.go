package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sequel-tui/sequel/pkg/version"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCommandPrintsBanner(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)

	assert.Equal(t,
		"Sequel v0.1.0 - Infrastructure phase complete\n"+
			"Full application will be available after Phase 6\n",
		out)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "Version: "+version.GetVersion())
	assert.Contains(t, out, "Go Version:")
	assert.Contains(t, out, "OS/Arch:")
}

func TestRootCommandHasExpectedCommands(t *testing.T) {
	expected := map[string]bool{
		"version": false,
		"tui":     false,
	}

	for _, cmd := range rootCmd.Commands() {
		if _, ok := expected[cmd.Name()]; ok {
			expected[cmd.Name()] = true
		}
	}

	for name, found := range expected {
		assert.True(t, found, "command %q should be registered", name)
	}
}

func TestRootCommandNoDuplicateCommands(t *testing.T) {
	seen := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		assert.False(t, seen[cmd.Name()], "duplicate command %q", cmd.Name())
		seen[cmd.Name()] = true
	}
}
