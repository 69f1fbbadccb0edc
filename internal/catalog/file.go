package catalog

import (
	"os"
	"path/filepath"
	"time"

	"github.com/llamactl/llamactl/internal/errors"
	"gopkg.in/yaml.v3"
)

// File is the on-disk catalog document. The models section is regenerated
// from the built-in registry on every run; the custom section belongs to the
// user and survives rewrites.
type File struct {
	Generated time.Time `yaml:"generated"`
	Models    []Entry   `yaml:"models"`
	Custom    []Entry   `yaml:"custom,omitempty"`
}

const fileHeader = `# llamactl model catalog
# The models section is regenerated on every run - edits there are lost.
# Add your own entries under custom: to include them in recommendations.
`

// WriteFile rewrites the catalog at path from the built-in registry,
// preserving any custom entries already present.
func WriteFile(path string) error {
	custom, err := readCustom(path)
	if err != nil {
		return err
	}

	doc := File{
		Generated: time.Now().UTC().Truncate(time.Second),
		Models:    Builtin(),
		Custom:    custom,
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrCatalog,
			"Failed to encode catalog",
			"This shouldn't happen - please report this bug")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.WrapWithCode(err, errors.ErrCatalog,
			"Couldn't create catalog directory",
			"Check permissions on "+filepath.Dir(path))
	}

	if err := os.WriteFile(path, append([]byte(fileHeader), data...), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrCatalog,
			"Couldn't write catalog file",
			"Check permissions on "+path)
	}
	return nil
}

// LoadAll returns the built-in registry plus the user's custom entries from
// the catalog file. A missing or unreadable file just means no custom entries.
func LoadAll(path string) []Entry {
	entries := Builtin()
	custom, err := readCustom(path)
	if err != nil {
		return entries
	}
	return append(entries, custom...)
}

// readCustom extracts the custom section from an existing catalog file.
// A missing file yields no entries; a malformed file is a catalog error so a
// rewrite doesn't silently destroy the user's additions.
func readCustom(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WrapWithCode(err, errors.ErrCatalog,
			"Couldn't read existing catalog file",
			"Check permissions on "+path)
	}

	var doc File
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrCatalog,
			"Existing catalog file is not valid YAML",
			"Fix or remove "+path+" and try again")
	}
	return doc.Custom, nil
}
