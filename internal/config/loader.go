package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/llamactl/llamactl/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the preferences file name.
	ConfigFileName = "config.json"
	// CatalogFileName is the on-disk model catalog file name.
	CatalogFileName = "catalog.yaml"
	// appDirName is the directory under the XDG config root.
	appDirName = "llamactl"
)

// Dir returns the llamactl configuration directory, honoring XDG_CONFIG_HOME.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return appDirName
	}
	return filepath.Join(home, ".config", appDirName)
}

// Find resolves the preferences file path. An explicit path (from --config)
// takes precedence; otherwise the default location is used. The returned
// path may not exist yet.
func Find(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return filepath.Join(Dir(), ConfigFileName)
}

// Load reads the preferences file from the given path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Preferences file not found",
				"Run 'llamactl init' to create one, or pass --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read preferences file",
			"Check the file exists and is valid JSON: "+path)
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid preferences format",
			"Check the JSON structure in "+path)
	}

	return cfg, nil
}

// LoadOrDefault loads preferences from the resolved path, or returns defaults
// when the file doesn't exist yet. Commands that only read preferences use
// this so a fresh machine works without 'init'.
func LoadOrDefault(explicit string) (*Config, error) {
	path := Find(explicit)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// Save writes the whole preferences file back to disk. The write goes through
// a temp file and rename so a failure never truncates the original.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't create config directory",
			"Check permissions on "+filepath.Dir(path))
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to encode preferences",
			"This shouldn't happen - please report this bug")
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*.json")
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't write preferences file",
			"Check permissions on "+filepath.Dir(path))
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't write preferences file", "")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't write preferences file", "")
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't set preferences file permissions", "")
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't replace preferences file",
			"Check permissions on "+path)
	}
	return nil
}

// HistoryPath returns the usage log path, resolving the default when unset.
func (c *Config) HistoryPath() string {
	if c.History.Path != "" {
		return c.History.Path
	}
	return filepath.Join(Dir(), "history.log")
}

// BackupDir returns the backups directory, resolving the default when unset.
func (c *Config) BackupDir() string {
	if c.Backup.Dir != "" {
		return c.Backup.Dir
	}
	return filepath.Join(Dir(), "backups")
}
