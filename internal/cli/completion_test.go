package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionValidArgs(t *testing.T) {
	assert.ElementsMatch(t,
		[]string{"bash", "zsh", "fish", "powershell"},
		completionCmd.ValidArgs)
}

func TestCompletionRejectsUnknownShell(t *testing.T) {
	err := completionCmd.Args(completionCmd, []string{"tcsh"})
	require.Error(t, err)
}

func TestCompletionRequiresArg(t *testing.T) {
	err := completionCmd.Args(completionCmd, nil)
	require.Error(t, err)
}
