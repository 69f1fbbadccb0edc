package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llamactl/llamactl/internal/catalog"
	"github.com/llamactl/llamactl/internal/config"
	"github.com/llamactl/llamactl/internal/ui"
)

var catalogCategory string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the model catalog",
	Long: `Show the model catalog: the built-in entries plus any custom entries from
the catalog file.

The catalog file is regenerated on every invocation; custom entries under the
'custom:' key are preserved across regenerations.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return catalogCommand()
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().StringVar(&catalogCategory, "category", "", "filter by category (chat, code, vision, embedding)")
}

// catalogPath returns the on-disk catalog location next to the preferences.
func catalogPath() string {
	return filepath.Join(filepath.Dir(prefsPath), config.CatalogFileName)
}

// refreshCatalog rewrites the catalog file. Failures only warn; a read-only
// config directory shouldn't block unrelated commands.
func refreshCatalog() {
	if err := catalog.WriteFile(catalogPath()); err != nil {
		log.Warn("catalog refresh failed: %v", err)
	}
}

// loadCatalog returns builtin entries merged with custom ones from disk.
func loadCatalog() []catalog.Entry {
	return catalog.LoadAll(catalogPath())
}

func catalogCommand() error {
	entries := loadCatalog()

	if catalogCategory != "" {
		entries = catalog.ByCategory(entries, catalog.Category(catalogCategory))
		if len(entries) == 0 {
			fmt.Printf("No catalog entries in category %q\n", catalogCategory)
			return nil
		}
	}

	if jsonFlag {
		return WriteJSONSuccess(os.Stdout, entries)
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			e.Name,
			e.Parameters,
			humanize.IBytes(uint64(e.SizeBytes)),
			humanize.IBytes(e.MinMemory),
			string(e.Category),
			e.Description,
		}
	}

	columns := []ui.TableColumn{
		{Title: "NAME", Width: 24},
		{Title: "PARAMS", Width: 8},
		{Title: "SIZE", Width: 9},
		{Title: "NEEDS", Width: 9},
		{Title: "CATEGORY", Width: 10},
		{Title: "DESCRIPTION", Width: 40},
	}

	fmt.Println(ui.RenderSimpleTable(columns, rows))
	fmt.Printf("catalog file: %s\n", catalogPath())
	return nil
}
