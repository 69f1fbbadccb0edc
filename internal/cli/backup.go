package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llamactl/llamactl/internal/backup"
	"github.com/llamactl/llamactl/internal/ui"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up the preferences file",
	Long: `Create a timestamped backup of the preferences file. Old backups are pruned
to the configured retention count (backup.keep, default 5).

Subcommands list and restore backups.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return backupCreateCommand()
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List preferences backups",
	RunE: func(cmd *cobra.Command, args []string) error {
		return backupListCommand()
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore [name]",
	Short: "Restore a preferences backup",
	Long: `Restore a backup over the current preferences file. The current file is
backed up first, so a restore never loses anything.

With no argument, pick from the available backups interactively.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		return backupRestoreCommand(name)
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupRestoreCmd)
}

func backupCreateCommand() error {
	dir := prefs.BackupDir()

	path, err := backup.Create(prefsPath, dir)
	if err != nil {
		return err
	}

	pruned, err := backup.Prune(dir, prefs.Backup.Keep)
	if err != nil {
		return err
	}

	if jsonFlag {
		return WriteJSONSuccess(os.Stdout, map[string]interface{}{
			"path":   path,
			"pruned": pruned,
		})
	}

	okStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	fmt.Printf("%s Backed up to %s\n", okStyle.Render(ui.SymbolSuccess), path)
	if pruned > 0 {
		fmt.Printf("Pruned %d old backup(s)\n", pruned)
	}
	return nil
}

func backupListCommand() error {
	backups, err := backup.List(prefs.BackupDir())
	if err != nil {
		return err
	}

	if jsonFlag {
		return WriteJSONSuccess(os.Stdout, backups)
	}

	if len(backups) == 0 {
		fmt.Println("No backups yet. Create one with 'llamactl backup'.")
		return nil
	}

	rows := make([][]string, len(backups))
	for i, b := range backups {
		rows[i] = []string{
			b.Name,
			humanize.IBytes(uint64(b.Size)),
			humanize.Time(b.ModTime),
		}
	}
	columns := []ui.TableColumn{
		{Title: "NAME", Width: 32},
		{Title: "SIZE", Width: 10},
		{Title: "CREATED", Width: 20},
	}
	fmt.Println(ui.RenderSimpleTable(columns, rows))
	return nil
}

func backupRestoreCommand(name string) error {
	dir := prefs.BackupDir()

	if name == "" {
		backups, err := backup.List(dir)
		if err != nil {
			return err
		}
		if len(backups) == 0 {
			fmt.Println("No backups to restore. Create one with 'llamactl backup'.")
			return nil
		}
		choices := make([]ui.ModelChoice, len(backups))
		for i, b := range backups {
			choices[i] = ui.ModelChoice{
				Name:    b.Name,
				Size:    humanize.IBytes(uint64(b.Size)),
				Summary: humanize.Time(b.ModTime),
			}
		}
		selected, err := ui.PickModel("Restore which backup?", choices)
		if err != nil {
			return err
		}
		if selected == nil {
			fmt.Println("Cancelled.")
			return nil
		}
		name = selected.Name
	}

	if err := backup.Restore(dir, name, prefsPath); err != nil {
		return err
	}

	okStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	fmt.Printf("%s Restored %s\n", okStyle.Render(ui.SymbolSuccess), name)
	return nil
}
