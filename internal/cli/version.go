package cli

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/llamactl/llamactl/internal/ollama"
	"github.com/llamactl/llamactl/internal/ui"
)

// Version information set via ldflags at build time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// versionShort controls whether to show short or full version output
var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of llamactl.`,
	Run: func(cmd *cobra.Command, args []string) {
		if versionShort {
			fmt.Println(version)
			return
		}

		fmt.Printf("llamactl %s\n", formatVersion(version))
		fmt.Printf("commit: %s\n", commit)
		fmt.Printf("built: %s\n", date)
		fmt.Printf("go: %s\n", runtime.Version())
		fmt.Printf("os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)

		// Ollama status piggybacks on the cached release check.
		printOllamaStatus()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
}

// formatVersion ensures version has a 'v' prefix for display
func formatVersion(v string) string {
	if v == "" || v == "dev" {
		return v
	}
	if v[0] != 'v' {
		return "v" + v
	}
	return v
}

// printOllamaStatus shows the installed ollama version and an update notice
// when the cached release check knows of a newer one.
func printOllamaStatus() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	runner := ollama.NewRunner(prefs.Ollama.Bin)
	status := ollama.NewInstaller(runner).CheckStatus(ctx)

	if !status.Installed {
		fmt.Printf("ollama: not installed\n")
		return
	}

	fmt.Printf("ollama: v%s\n", status.Version)
	if status.UpdateAvailable {
		noticeStyle := lipgloss.NewStyle().Foreground(ui.ColorWarning)
		fmt.Println(noticeStyle.Render(fmt.Sprintf(
			"  v%s is available, run 'llamactl install' to update", status.Latest)))
	}
}

// SetVersionInfo sets the version information (called from main).
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// GetVersion returns the current version string.
func GetVersion() string {
	return version
}
