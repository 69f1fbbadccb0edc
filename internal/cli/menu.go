package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llamactl/llamactl/internal/hardware"
	"github.com/llamactl/llamactl/internal/ui"
)

// Menu actions. The menu loops until quit so one session can pull, switch,
// and inspect without re-running the binary.
const (
	menuActionHardware  = "hardware"
	menuActionRecommend = "recommend"
	menuActionModels    = "models"
	menuActionUse       = "use"
	menuActionRun       = "run"
	menuActionInstall   = "install"
	menuActionDoctor    = "doctor"
	menuActionHistory   = "history"
	menuActionBackup    = "backup"
	menuActionQuit      = "quit"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the interactive menu",
	Long: `Open the interactive main menu. This is also what running llamactl with no
arguments does on a terminal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return menuCommand()
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func menuCommand() error {
	printMenuHeader()

	for {
		action, err := pickMenuAction()
		if err != nil {
			// Ctrl+C / ESC in the form means leave the menu.
			return nil
		}

		if action == menuActionQuit {
			return nil
		}
		if err := runMenuAction(action); err != nil {
			// Show the failure and return to the menu rather than exiting.
			fmt.Println(err)
		}
		fmt.Println()
	}
}

// printMenuHeader renders the branded header with a hardware summary line.
func printMenuHeader() {
	detail := ""
	if info, err := hardware.Detect(cmdContext()); err == nil {
		detail = fmt.Sprintf("%s tier, %s usable for models",
			info.Tier(), humanize.IBytes(info.EffectiveMemory()))
	}

	ui.PrintHeader(ui.HeaderInfo{
		Version: formatVersion(version),
		Tagline: "Local model manager for ollama",
		Detail:  detail,
	})
}

func pickMenuAction() (string, error) {
	options := []huh.Option[string]{
		huh.NewOption("Show hardware", menuActionHardware),
		huh.NewOption("Recommend models", menuActionRecommend),
		huh.NewOption("List installed models", menuActionModels),
		huh.NewOption("Switch active model", menuActionUse),
		huh.NewOption("Run the active model", menuActionRun),
		huh.NewOption("Install/update ollama", menuActionInstall),
		huh.NewOption("Doctor", menuActionDoctor),
		huh.NewOption("History", menuActionHistory),
		huh.NewOption("Back up preferences", menuActionBackup),
		huh.NewOption("Quit", menuActionQuit),
	}

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What would you like to do?").
				Options(options...).
				Value(&selected),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return selected, nil
}

func runMenuAction(action string) error {
	switch action {
	case menuActionHardware:
		return hardwareCommand()
	case menuActionRecommend:
		recommendPull = true
		defer func() { recommendPull = false }()
		return recommendCommand()
	case menuActionModels:
		return modelsCommand()
	case menuActionUse:
		return useCommand("")
	case menuActionRun:
		return runCommand("", nil)
	case menuActionInstall:
		return installCommand()
	case menuActionDoctor:
		return doctorCommand()
	case menuActionHistory:
		return historyCommand()
	case menuActionBackup:
		return backupCreateCommand()
	}
	return nil
}
