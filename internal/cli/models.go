package cli

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llamactl/llamactl/internal/catalog"
	"github.com/llamactl/llamactl/internal/hardware"
	"github.com/llamactl/llamactl/internal/ollama"
	"github.com/llamactl/llamactl/internal/ui"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List installed models",
	Long: `List locally installed models, marking the active one.

The listing comes from 'ollama list'; when the server is running, sizes are
cross-checked against /api/tags. Models known to exceed the detected memory
get a fit warning.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return modelsCommand()
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

// ModelOutput is the JSON shape for one installed model.
type ModelOutput struct {
	Name     string `json:"name"`
	ID       string `json:"id,omitempty"`
	Size     string `json:"size"`
	Modified string `json:"modified,omitempty"`
	Active   bool   `json:"active"`
	Warning  string `json:"warning,omitempty"`
}

func modelsCommand() error {
	runner := ollama.NewRunner(prefs.Ollama.Bin)
	installed, err := runner.List(cmdContext())
	if err != nil {
		return err
	}
	installed = mergeServerTags(installed)

	// Fit warnings need the memory budget; detection failure just skips them.
	var budget uint64
	if info, err := hardware.Detect(cmdContext()); err == nil {
		budget = info.EffectiveMemory()
	}

	entries := loadCatalog()
	models := make([]ModelOutput, len(installed))
	for i, m := range installed {
		out := ModelOutput{
			Name:     m.Name,
			ID:       m.ID,
			Size:     m.Size,
			Modified: m.Modified,
			Active:   m.Name == prefs.LastModel,
		}
		if budget > 0 {
			out.Warning = catalog.FitNote(entries, m.Name, budget)
		}
		models[i] = out
	}

	if jsonFlag {
		return WriteJSONSuccess(os.Stdout, models)
	}

	if len(models) == 0 {
		fmt.Println("No models installed. Try 'llamactl recommend --pull' to get started.")
		return nil
	}

	rows := make([]ui.ModelRow, len(models))
	for i, m := range models {
		rows[i] = ui.ModelRow{
			Active:  m.Active,
			Name:    m.Name,
			Size:    m.Size,
			Detail:  m.Modified,
			Warning: m.Warning,
		}
	}
	fmt.Println(ui.RenderModelTable(rows))

	if prefs.LastModel == "" {
		fmt.Println("No active model set. Pick one with 'llamactl use'.")
	}
	return nil
}

// mergeServerTags cross-checks the CLI listing against /api/tags. Models the
// server knows but the CLI output missed are appended; an unreachable server
// just means no merge.
func mergeServerTags(installed []ollama.InstalledModel) []ollama.InstalledModel {
	client := ollama.NewClient(prefs.Ollama.Host)
	tags, err := client.Tags(cmdContext())
	if err != nil {
		log.Debug("tags merge skipped: %v", err)
		return installed
	}

	seen := make(map[string]bool, len(installed))
	for _, m := range installed {
		seen[m.Name] = true
	}
	for _, t := range tags {
		if seen[t.Name] {
			continue
		}
		installed = append(installed, ollama.InstalledModel{
			Name:     t.Name,
			Size:     humanize.IBytes(uint64(t.Size)),
			Modified: t.ModifiedAt,
		})
	}
	return installed
}
