// Package backup manages timestamped copies of the preferences file.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/llamactl/llamactl/internal/errors"
)

// nameFormat is the timestamp layout inside backup file names.
const nameFormat = "20060102-150405"

// Info describes one backup on disk.
type Info struct {
	Name    string    `json:"name"`
	Path    string    `json:"path"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
}

// Create copies the preferences file at prefsPath into dir as
// config-<timestamp>.json and returns its path.
func Create(prefsPath, dir string) (string, error) {
	data, err := os.ReadFile(prefsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.New(errors.ErrConfig,
				"There is no preferences file to back up",
				"Run 'llamactl init' to create one first")
		}
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't read the preferences file",
			"Check permissions on "+prefsPath)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't create the backup directory",
			"Check permissions on "+dir)
	}

	name := fmt.Sprintf("config-%s.json", time.Now().Format(nameFormat))
	path := filepath.Join(dir, name)
	// Same-second backups get a numeric suffix instead of clobbering.
	for i := 2; ; i++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		path = filepath.Join(dir, fmt.Sprintf("config-%s-%d.json", time.Now().Format(nameFormat), i))
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't write the backup",
			"Check permissions on "+dir)
	}
	return path, nil
}

// List returns the backups in dir, newest first. A missing directory means
// no backups.
func List(dir string) ([]Info, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't read the backup directory",
			"Check permissions on "+dir)
	}

	var backups []Info
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), "config-") || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Name:    e.Name(),
			Path:    filepath.Join(dir, e.Name()),
			Size:    fi.Size(),
			ModTime: fi.ModTime(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		if backups[i].ModTime.Equal(backups[j].ModTime) {
			return backups[i].Name > backups[j].Name
		}
		return backups[i].ModTime.After(backups[j].ModTime)
	})
	return backups, nil
}

// Restore copies the named backup back over the preferences file. The current
// preferences are backed up first so a restore is never destructive.
func Restore(dir, name, prefsPath string) error {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			available, _ := List(dir)
			names := make([]string, 0, len(available))
			for _, b := range available {
				names = append(names, b.Name)
			}
			suggestion := "Run 'llamactl backup list' to see what's available"
			if len(names) > 0 {
				suggestion = "Available backups: " + strings.Join(names, ", ")
			}
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Backup '%s' not found", name), suggestion)
		}
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't read the backup",
			"Check permissions on "+path)
	}

	// Keep a copy of what we're about to overwrite.
	if _, err := os.Stat(prefsPath); err == nil {
		if _, err := Create(prefsPath, dir); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(prefsPath), 0755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't create the config directory", "")
	}
	if err := os.WriteFile(prefsPath, data, 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't restore the preferences file",
			"Check permissions on "+prefsPath)
	}
	return nil
}

// Prune removes the oldest backups beyond keep, returning how many were deleted.
func Prune(dir string, keep int) (int, error) {
	if keep < 1 {
		keep = 1
	}
	backups, err := List(dir)
	if err != nil {
		return 0, err
	}
	if len(backups) <= keep {
		return 0, nil
	}

	removed := 0
	for _, b := range backups[keep:] {
		if err := os.Remove(b.Path); err != nil {
			return removed, errors.WrapWithCode(err, errors.ErrConfig,
				"Couldn't prune old backups",
				"Check permissions on "+dir)
		}
		removed++
	}
	return removed, nil
}
