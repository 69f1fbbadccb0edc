package config

// CurrentConfigVersion is the schema version for the preferences file.
// Increment when making breaking changes to the structure.
const CurrentConfigVersion = 1

// Config represents the complete preferences file. It is stored as JSON and
// rewritten wholesale on every mutation: load, change, save.
type Config struct {
	Version int `json:"version" mapstructure:"version"`

	// LastModel is the model most recently selected with 'use' or 'run'.
	LastModel string `json:"last_model" mapstructure:"last_model"`

	// PreferredModels is an ordered list of models the user has starred,
	// shown first in pickers.
	PreferredModels []string `json:"preferred_models" mapstructure:"preferred_models"`

	UI      UIConfig      `json:"ui" mapstructure:"ui"`
	Ollama  OllamaConfig  `json:"ollama" mapstructure:"ollama"`
	History HistoryConfig `json:"history" mapstructure:"history"`
	Backup  BackupConfig  `json:"backup" mapstructure:"backup"`
}

// UIConfig controls terminal interaction behavior.
type UIConfig struct {
	// Mode selects the default interaction style: "menu" (interactive main
	// menu when run without arguments) or "plain" (help text only).
	Mode string `json:"mode" mapstructure:"mode"`

	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `json:"color" mapstructure:"color"`

	// ConfirmPulls asks before downloading models.
	ConfirmPulls bool `json:"confirm_pulls" mapstructure:"confirm_pulls"`
}

// OllamaConfig points at the local ollama installation.
type OllamaConfig struct {
	// Host is the base URL of the local ollama server.
	Host string `json:"host" mapstructure:"host"`

	// Bin overrides the ollama binary path. Empty means PATH lookup.
	Bin string `json:"bin" mapstructure:"bin"`
}

// HistoryConfig controls the append-only usage log.
type HistoryConfig struct {
	// Path of the log file. Empty means <config dir>/history.log.
	Path string `json:"path" mapstructure:"path"`

	// MaxEntries trims the log to the newest N lines on append. 0 disables trimming.
	MaxEntries int `json:"max_entries" mapstructure:"max_entries"`
}

// BackupConfig controls preferences file backups.
type BackupConfig struct {
	// Dir where backups are stored. Empty means <config dir>/backups.
	Dir string `json:"dir" mapstructure:"dir"`

	// Keep is how many backups to retain; older ones are pruned.
	Keep int `json:"keep" mapstructure:"keep"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:         CurrentConfigVersion,
		PreferredModels: []string{},
		UI: UIConfig{
			Mode:         "menu",
			Color:        "auto",
			ConfirmPulls: true,
		},
		Ollama: OllamaConfig{
			Host: "http://localhost:11434",
		},
		History: HistoryConfig{
			MaxEntries: 1000,
		},
		Backup: BackupConfig{
			Keep: 5,
		},
	}
}
