package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/llamactl/llamactl/internal/catalog"
	"github.com/llamactl/llamactl/internal/hardware"
	"github.com/llamactl/llamactl/internal/history"
	"github.com/llamactl/llamactl/internal/ollama"
	"github.com/llamactl/llamactl/internal/ui"
)

var pullCmd = &cobra.Command{
	Use:   "pull <model>",
	Short: "Pull a model",
	Long: `Pull a model via the ollama CLI, streaming its progress output.

Models the catalog knows to exceed the detected memory budget get a warning
before the download starts.

Examples:
  llamactl pull llama3.2:3b
  llamactl pull qwen2.5-coder:7b`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return pullModel(args[0])
	},
}

func init() {
	rootCmd.AddCommand(pullCmd)
}

// pullModel pulls a model, records history, and remembers it in preferences.
// Shared by pull, recommend --pull, and the menu.
func pullModel(model string) error {
	if info, err := hardware.Detect(cmdContext()); err == nil {
		if note := catalog.FitNote(loadCatalog(), model, info.EffectiveMemory()); note != "" {
			warnStyle := lipgloss.NewStyle().Foreground(ui.ColorWarning)
			fmt.Println(warnStyle.Render(note))
		}
	}

	runner := ollama.NewRunner(prefs.Ollama.Bin)
	if err := runner.Pull(cmdContext(), model, os.Stdout); err != nil {
		return err
	}

	appendHistory(history.EventPull, model, "")

	changed := false
	if !containsModel(prefs.PreferredModels, model) {
		prefs.PreferredModels = append(prefs.PreferredModels, model)
		changed = true
	}
	if prefs.LastModel == "" {
		prefs.LastModel = model
		changed = true
	}
	if changed {
		if err := savePrefs(); err != nil {
			return err
		}
	}

	okStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	fmt.Printf("%s Pulled %s\n", okStyle.Render(ui.SymbolSuccess), model)
	return nil
}

// appendHistory records a usage-log line. Logging trouble warns but never
// aborts the action it describes.
func appendHistory(event, model, detail string) {
	hl := history.New(prefs.HistoryPath(), prefs.History.MaxEntries)
	if err := hl.Append(event, model, detail); err != nil {
		log.Warn("history append failed: %v", err)
	}
}

func containsModel(models []string, model string) bool {
	for _, m := range models {
		if m == model {
			return true
		}
	}
	return false
}
