package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/llamactl/llamactl/internal/history"
)

var (
	historyCount int
	historyAll   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the usage log",
	Long: `Show the usage log: one line per pull, switch, run, remove, or install,
newest last.

Examples:
  llamactl history
  llamactl history -n 50
  llamactl history --all`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return historyCommand()
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the usage log",
	RunE: func(cmd *cobra.Command, args []string) error {
		hl := history.New(prefs.HistoryPath(), prefs.History.MaxEntries)
		if err := hl.Clear(); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.Flags().IntVarP(&historyCount, "count", "n", 20, "number of entries to show")
	historyCmd.Flags().BoolVar(&historyAll, "all", false, "show the whole log")
}

func historyCommand() error {
	n := historyCount
	if historyAll {
		n = 0
	}

	hl := history.New(prefs.HistoryPath(), prefs.History.MaxEntries)
	entries, err := hl.Tail(n)
	if err != nil {
		return err
	}

	if jsonFlag {
		return WriteJSONSuccess(os.Stdout, entries)
	}

	if len(entries) == 0 {
		fmt.Println("No history yet.")
		return nil
	}
	for _, e := range entries {
		fmt.Println(e.String())
	}
	return nil
}
