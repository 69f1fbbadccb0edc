package doctor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/llamactl/llamactl/internal/catalog"
	"github.com/llamactl/llamactl/internal/config"
)

// PrefsCheck verifies the preferences file parses and validates. A broken or
// missing file is fixable by writing defaults.
type PrefsCheck struct {
	Path string
}

func (c *PrefsCheck) Name() string     { return "preferences file" }
func (c *PrefsCheck) Category() string { return "CONFIG" }

func (c *PrefsCheck) Run() CheckResult {
	if _, err := os.Stat(c.Path); os.IsNotExist(err) {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "no preferences file yet, defaults apply",
			Suggestion: "Run 'llamactl init' or 'llamactl doctor --fix' to create one",
			Fixable:    true,
		}
	}

	cfg, err := config.Load(c.Path)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("%s can't be parsed", c.Path),
			Suggestion: "Restore a backup with 'llamactl backup restore' or recreate with 'llamactl doctor --fix'",
			Fixable:    true,
		}
	}

	if err := config.Validate(cfg); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    err.Error(),
			Suggestion: "Edit " + c.Path + " or recreate with 'llamactl doctor --fix'",
			Fixable:    true,
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: c.Path,
	}
}

// Fix writes a fresh defaults file. An existing file is left alone when it
// already parses and validates.
func (c *PrefsCheck) Fix() error {
	if cfg, err := config.Load(c.Path); err == nil {
		if config.Validate(cfg) == nil {
			return nil
		}
	}
	return config.Save(config.DefaultConfig(), c.Path)
}

// CatalogCheck verifies the catalog file can be regenerated in its directory.
type CatalogCheck struct {
	Path string
}

func (c *CatalogCheck) Name() string     { return "model catalog" }
func (c *CatalogCheck) Category() string { return "CONFIG" }

func (c *CatalogCheck) Run() CheckResult {
	if err := catalog.WriteFile(c.Path); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "catalog can't be written to " + c.Path,
			Suggestion: "Check permissions on " + filepath.Dir(c.Path),
		}
	}

	entries := catalog.LoadAll(c.Path)
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("%d models in %s", len(entries), c.Path),
	}
}

func (c *CatalogCheck) Fix() error { return nil }
