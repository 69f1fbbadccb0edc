package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/llamactl/llamactl/internal/errors"
	"github.com/llamactl/llamactl/internal/history"
	"github.com/llamactl/llamactl/internal/ollama"
	"github.com/llamactl/llamactl/internal/util"
)

var runModelFlag string

var runCmd = &cobra.Command{
	Use:   "run [prompt...]",
	Short: "Run the active model",
	Long: `Run a model interactively via 'ollama run', with stdin/stdout attached.

Without --model, the active model from preferences is used. A trailing prompt
is passed through to ollama.

Examples:
  llamactl run
  llamactl run "explain goroutines"
  llamactl run --model phi3:mini "summarize this"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(runModelFlag, args)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runModelFlag, "model", "", "model to run (defaults to the active model)")
}

func runCommand(model string, promptArgs []string) error {
	if model == "" {
		model = prefs.LastModel
	}
	if model == "" {
		return errors.New(errors.ErrConfig,
			"No active model set",
			"Pick one with 'llamactl use' or pass --model")
	}

	runner := ollama.NewRunner(prefs.Ollama.Bin)
	installed, err := runner.List(cmdContext())
	if err != nil {
		return err
	}
	if !installedContains(installed, model) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Model '%s' is not installed", model),
			"Pull it first with 'llamactl pull "+model+"'")
	}

	detail := ""
	if len(promptArgs) > 0 {
		detail = util.Truncate(strings.Join(promptArgs, " "), 60)
	}
	appendHistory(history.EventRun, model, detail)

	code, err := runner.Run(cmdContext(), model, promptArgs, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		return err
	}
	// Pass the model's exit status through without wrapping it in an error.
	exitCode = code
	return nil
}
