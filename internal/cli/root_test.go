package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llamactl/llamactl/internal/ollama"
)

func TestContainsModel(t *testing.T) {
	models := []string{"llama3.2:3b", "phi3:mini"}

	assert.True(t, containsModel(models, "phi3:mini"))
	assert.False(t, containsModel(models, "gemma2:9b"))
	assert.False(t, containsModel(nil, "anything"))
}

func TestInstalledContains(t *testing.T) {
	installed := []ollama.InstalledModel{
		{Name: "llama3.2:3b"},
		{Name: "qwen2.5-coder:7b"},
	}

	assert.True(t, installedContains(installed, "qwen2.5-coder:7b"))
	assert.False(t, installedContains(installed, "llama3.2:1b"))
}

func TestRootCommandRegistration(t *testing.T) {
	expected := []string{
		"hardware", "recommend", "models", "pull", "rm", "use", "run",
		"install", "doctor", "init", "history", "backup", "catalog",
		"menu", "version", "completion",
	}

	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range expected {
		assert.True(t, registered[name], "command %q not registered", name)
	}
}

func TestGlobalFlags(t *testing.T) {
	for _, name := range []string{"config", "json", "no-color", "verbose"} {
		flag := rootCmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, "global flag %q not defined", name)
	}
}
