package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/llamactl/llamactl/internal/config"
	"github.com/llamactl/llamactl/internal/errors"
	"github.com/llamactl/llamactl/internal/ui"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the preferences file",
	Long: `Create the preferences file interactively: UI mode, color handling, and
whether pulls need confirmation.

Without a terminal the defaults are written as-is. Use --force to overwrite an
existing file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand()
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing preferences file")
}

func initCommand() error {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	if _, err := os.Stat(prefsPath); err == nil && !initForce {
		if !interactive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Preferences file already exists: %s", prefsPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("'%s' already exists. Overwrite?", prefsPath)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil || !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()

	if interactive {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Default interface").
					Description("The menu opens when llamactl runs with no arguments").
					Options(
						huh.NewOption("Interactive menu", "menu"),
						huh.NewOption("Plain CLI (help text)", "plain"),
					).
					Value(&cfg.UI.Mode),
			),
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Colored output").
					Options(
						huh.NewOption("Auto (detect terminal)", "auto"),
						huh.NewOption("Always", "always"),
						huh.NewOption("Never", "never"),
					).
					Value(&cfg.UI.Color),
			),
			huh.NewGroup(
				huh.NewConfirm().
					Title("Confirm before pulling models?").
					Description("Model downloads can be many gigabytes").
					Value(&cfg.UI.ConfirmPulls),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Run again, or use --force to write defaults")
		}
	}

	if err := config.Save(cfg, prefsPath); err != nil {
		return err
	}
	prefs = cfg
	refreshCatalog()

	okStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	fmt.Printf("%s Wrote %s\n", okStyle.Render(ui.SymbolSuccess), prefsPath)
	fmt.Println("Next: 'llamactl recommend' to find models that fit your hardware.")
	return nil
}
