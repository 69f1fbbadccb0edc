package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/llamactl/llamactl/internal/history"
	"github.com/llamactl/llamactl/internal/ollama"
	"github.com/llamactl/llamactl/internal/ui"
)

var installYes bool

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install or update the ollama binary",
	Long: `Install ollama if it's missing, or update it when the GitHub release check
knows of a newer version.

Linux uses the official install script; macOS uses Homebrew. The command shown
runs only after confirmation (skip with --yes).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return installCommand()
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
	installCmd.Flags().BoolVarP(&installYes, "yes", "y", false, "skip the confirmation prompt")
}

func installCommand() error {
	runner := ollama.NewRunner(prefs.Ollama.Bin)
	installer := ollama.NewInstaller(runner)

	s := ui.NewSpinner("Checking ollama status")
	s.Start()
	status := installer.CheckStatus(cmdContext())
	s.Success()

	okStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)

	switch {
	case !status.Installed:
		fmt.Println("ollama is not installed.")
	case status.UpdateAvailable:
		fmt.Printf("ollama v%s is installed; v%s is available.\n", status.Version, status.Latest)
	default:
		if status.Latest == "" {
			fmt.Printf("%s ollama v%s is installed (release check unavailable)\n",
				okStyle.Render(ui.SymbolSuccess), status.Version)
		} else {
			fmt.Printf("%s ollama v%s is up to date\n",
				okStyle.Render(ui.SymbolSuccess), status.Version)
		}
		return nil
	}

	name, args, ok := ollama.InstallCommand()
	if !ok {
		fmt.Println("No installer is available for this platform. See https://ollama.com/download")
		return nil
	}

	if !installYes {
		var confirmed bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Run: %s %s?", name, strings.Join(args, " "))).
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil || !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := installer.Install(cmdContext(), os.Stdout, os.Stderr); err != nil {
		return err
	}

	version, err := runner.Version(cmdContext())
	if err != nil {
		version = "unknown"
	}
	appendHistory(history.EventInstall, "ollama", "v"+version)

	fmt.Printf("%s ollama v%s installed\n", okStyle.Render(ui.SymbolSuccess), version)
	return nil
}
