package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/llamactl/llamactl/internal/config"
	"github.com/llamactl/llamactl/internal/logger"
	"github.com/llamactl/llamactl/internal/ui"
)

// Global flags available to all subcommands.
var (
	configFlag  string
	jsonFlag    bool
	noColorFlag bool
	verboseFlag bool
)

// Shared state loaded once in the root pre-run.
var (
	prefs     *config.Config
	prefsPath string
	log       = logger.Default()
)

// exitCode carries a subprocess exit status out of 'run' so Execute can
// propagate it without treating it as an error.
var exitCode int

var rootCmd = &cobra.Command{
	Use:   "llamactl",
	Short: "Manage local ollama models sized to your hardware",
	Long: `llamactl detects your hardware, recommends models that fit it, and keeps
your local ollama setup tidy: install/update the binary, pull and switch
models, and track usage.

Run with no arguments to open the interactive menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if ui.IsTerminal(os.Stdin) && prefs.UI.Mode != "plain" {
			return menuCommand()
		}
		return cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

// setup loads preferences and applies global presentation flags. It runs
// before every command.
func setup() error {
	if verboseFlag {
		os.Setenv("LLAMACTL_DEBUG", "1")
		log = logger.NewEnvLogger("llamactl")
		logger.SetDefault(log)
	}

	prefsPath = config.Find(configFlag)

	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	prefs = cfg

	if noColorFlag {
		ui.DisableColors()
	} else {
		ui.SetColorMode(prefs.UI.Color)
	}

	refreshCatalog()
	return nil
}

// Execute runs the root command. Errors are printed once, here, in the
// structured format (or as a JSON envelope under --json).
func Execute() {
	var err error
	withSignalContext(func() {
		err = rootCmd.Execute()
	})
	if err != nil {
		if jsonFlag {
			WriteJSONFromError(os.Stdout, err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "preferences file path")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "machine-readable JSON output")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
}

// Config returns the path passed via --config, if any.
func Config() string {
	return configFlag
}

// savePrefs writes the whole preferences file back to disk.
func savePrefs() error {
	return config.Save(prefs, prefsPath)
}
