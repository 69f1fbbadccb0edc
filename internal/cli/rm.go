package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/llamactl/llamactl/internal/history"
	"github.com/llamactl/llamactl/internal/ollama"
	"github.com/llamactl/llamactl/internal/ui"
)

var rmForce bool

var rmCmd = &cobra.Command{
	Use:     "rm <model>",
	Aliases: []string{"remove"},
	Short:   "Remove an installed model",
	Long: `Remove an installed model after confirmation.

Removing the active model clears the last-used preference.

Examples:
  llamactl rm llama3.1:70b
  llamactl rm --force gemma2:27b`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return rmCommand(args[0])
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
	rmCmd.Flags().BoolVarP(&rmForce, "force", "f", false, "skip the confirmation prompt")
}

func rmCommand(model string) error {
	if !rmForce {
		var confirmed bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Remove %s? The download is gone until you pull it again.", model)).
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil || !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	runner := ollama.NewRunner(prefs.Ollama.Bin)
	if err := runner.Remove(cmdContext(), model); err != nil {
		return err
	}

	appendHistory(history.EventRemove, model, "")

	changed := false
	if prefs.LastModel == model {
		prefs.LastModel = ""
		changed = true
	}
	for i, m := range prefs.PreferredModels {
		if m == model {
			prefs.PreferredModels = append(prefs.PreferredModels[:i], prefs.PreferredModels[i+1:]...)
			changed = true
			break
		}
	}
	if changed {
		if err := savePrefs(); err != nil {
			return err
		}
	}

	okStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	fmt.Printf("%s Removed %s\n", okStyle.Render(ui.SymbolSuccess), model)
	return nil
}
