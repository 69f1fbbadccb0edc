package doctor

import (
	"path/filepath"

	"github.com/llamactl/llamactl/internal/config"
	"github.com/llamactl/llamactl/internal/ollama"
)

// AllChecks builds the standard check suite for a loaded configuration.
func AllChecks(cfg *config.Config, prefsPath string) []Check {
	runner := ollama.NewRunner(cfg.Ollama.Bin)
	client := ollama.NewClient(cfg.Ollama.Host)
	installer := ollama.NewInstaller(runner)

	catalogPath := filepath.Join(filepath.Dir(prefsPath), config.CatalogFileName)

	return []Check{
		&BinaryCheck{Runner: runner},
		&ServerCheck{Client: client},
		&UpdateCheck{Installer: installer, Runner: runner},
		&PrefsCheck{Path: prefsPath},
		&CatalogCheck{Path: catalogPath},
		&DiskSpaceCheck{},
		&HardwareCheck{},
	}
}
