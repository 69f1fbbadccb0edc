package config

import (
	"fmt"
	"net/url"

	"github.com/llamactl/llamactl/internal/errors"
)

var validColorModes = map[string]bool{"auto": true, "always": true, "never": true}
var validUIModes = map[string]bool{"menu": true, "plain": true}

// Validate checks a loaded Config for values that would break commands later.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Preferences version %d is newer than this build supports (%d)", cfg.Version, CurrentConfigVersion),
			"Update llamactl, or recreate the file with 'llamactl init --force'")
	}

	if !validUIModes[cfg.UI.Mode] {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown ui.mode: %q", cfg.UI.Mode),
			"Valid modes are: menu, plain")
	}

	if !validColorModes[cfg.UI.Color] {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown ui.color: %q", cfg.UI.Color),
			"Valid values are: auto, always, never")
	}

	if cfg.Ollama.Host != "" {
		u, err := url.Parse(cfg.Ollama.Host)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("ollama.host is not a valid URL: %q", cfg.Ollama.Host),
				"Use something like http://localhost:11434")
		}
	}

	if cfg.Backup.Keep < 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("backup.keep must be at least 1, got %d", cfg.Backup.Keep),
			"Set backup.keep to how many backups to retain")
	}

	if cfg.History.MaxEntries < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("history.max_entries cannot be negative, got %d", cfg.History.MaxEntries),
			"Use 0 to disable trimming")
	}

	return nil
}
