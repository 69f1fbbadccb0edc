package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.Equal(t, "menu", cfg.UI.Mode)
	assert.Equal(t, "auto", cfg.UI.Color)
	assert.True(t, cfg.UI.ConfirmPulls)
	assert.Equal(t, "http://localhost:11434", cfg.Ollama.Host)
	assert.Equal(t, 5, cfg.Backup.Keep)
	assert.NoError(t, Validate(cfg))
}

func TestLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	cfg := DefaultConfig()
	cfg.LastModel = "llama3.2:3b"
	cfg.PreferredModels = []string{"llama3.2:3b", "qwen2.5-coder:7b"}
	cfg.UI.Mode = "plain"

	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "llama3.2:3b", loaded.LastModel)
	assert.Equal(t, []string{"llama3.2:3b", "qwen2.5-coder:7b"}, loaded.PreferredModels)
	assert.Equal(t, "plain", loaded.UI.Mode)
	// Defaults still merged for untouched sections.
	assert.Equal(t, "http://localhost:11434", loaded.Ollama.Host)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_PartialFileMergesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"version":1,"last_model":"phi3:mini"}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "phi3:mini", cfg.LastModel)
	assert.Equal(t, "menu", cfg.UI.Mode)
	assert.Equal(t, 1000, cfg.History.MaxEntries)
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSave_WholeFileRewrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)

	cfg := DefaultConfig()
	require.NoError(t, Save(cfg, path))

	cfg.LastModel = "gemma2:9b"
	require.NoError(t, Save(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "gemma2:9b", raw["last_model"])
}

func TestSave_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", ConfigFileName)
	require.NoError(t, Save(DefaultConfig(), path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid defaults", func(c *Config) {}, ""},
		{"future version", func(c *Config) { c.Version = 99 }, "newer"},
		{"bad ui mode", func(c *Config) { c.UI.Mode = "fancy" }, "ui.mode"},
		{"bad color", func(c *Config) { c.UI.Color = "rainbow" }, "ui.color"},
		{"bad host", func(c *Config) { c.Ollama.Host = "not a url" }, "ollama.host"},
		{"zero keep", func(c *Config) { c.Backup.Keep = 0 }, "backup.keep"},
		{"negative history", func(c *Config) { c.History.MaxEntries = -1 }, "max_entries"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := Validate(cfg)
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}

func TestHistoryPathAndBackupDir_Overrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.History.Path = "/tmp/custom.log"
	cfg.Backup.Dir = "/tmp/backups"

	assert.Equal(t, "/tmp/custom.log", cfg.HistoryPath())
	assert.Equal(t, "/tmp/backups", cfg.BackupDir())
}

func TestFind_ExplicitWins(t *testing.T) {
	assert.Equal(t, "/x/y.json", Find("/x/y.json"))
	assert.Equal(t, filepath.Join(Dir(), ConfigFileName), Find(""))
}
