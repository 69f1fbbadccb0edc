package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/llamactl/llamactl/internal/errors"
	"github.com/llamactl/llamactl/internal/history"
	"github.com/llamactl/llamactl/internal/ollama"
	"github.com/llamactl/llamactl/internal/ui"
)

var useCmd = &cobra.Command{
	Use:   "use [model]",
	Short: "Switch the active model",
	Long: `Switch the active model. With no argument, pick from the installed models
interactively.

The choice persists in the preferences file and 'llamactl run' uses it by
default.

Examples:
  llamactl use
  llamactl use llama3.2:3b`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		model := ""
		if len(args) > 0 {
			model = args[0]
		}
		return useCommand(model)
	},
}

func init() {
	rootCmd.AddCommand(useCmd)
}

func useCommand(model string) error {
	runner := ollama.NewRunner(prefs.Ollama.Bin)
	installed, err := runner.List(cmdContext())
	if err != nil {
		return err
	}

	if model == "" {
		selected, err := pickInstalledModel(installed, "Switch to which model?")
		if err != nil {
			return err
		}
		if selected == "" {
			fmt.Println("Cancelled.")
			return nil
		}
		model = selected
	} else if !installedContains(installed, model) {
		names := make([]string, len(installed))
		for i, m := range installed {
			names[i] = m.Name
		}
		suggestion := "Pull it first with 'llamactl pull " + model + "'"
		if len(names) > 0 {
			suggestion = "Installed models: " + strings.Join(names, ", ")
		}
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Model '%s' is not installed", model), suggestion)
	}

	prefs.LastModel = model
	if err := savePrefs(); err != nil {
		return err
	}
	appendHistory(history.EventUse, model, "")

	okStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	fmt.Printf("%s Now using %s\n", okStyle.Render(ui.SymbolSuccess), model)
	return nil
}

// pickInstalledModel shows the interactive picker over installed models.
// Returns "" when the user cancels.
func pickInstalledModel(installed []ollama.InstalledModel, title string) (string, error) {
	choices := make([]ui.ModelChoice, len(installed))
	for i, m := range installed {
		choices[i] = ui.ModelChoice{
			Name:    m.Name,
			Size:    m.Size,
			Summary: m.Modified,
		}
	}

	selected, err := ui.PickModel(title, choices)
	if err != nil {
		return "", err
	}
	if selected == nil {
		return "", nil
	}
	return selected.Name, nil
}

func installedContains(installed []ollama.InstalledModel, model string) bool {
	for _, m := range installed {
		if m.Name == model {
			return true
		}
	}
	return false
}
