package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/llamactl/llamactl/internal/doctor"
	"github.com/llamactl/llamactl/internal/ui"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose setup issues",
	Long: `Run diagnostic checks over the local setup: the ollama binary and server,
the preferences file, the catalog, disk space, and hardware detection.

With --fix, fixable issues (like a broken preferences file) are repaired
automatically.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand()
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "attempt automatic fixes where possible")
}

// DoctorOutput is the JSON shape for the doctor command.
type DoctorOutput struct {
	Categories []CategoryOutput `json:"categories"`
	Summary    SummaryOutput    `json:"summary"`
}

// CategoryOutput groups check results under their category.
type CategoryOutput struct {
	Name    string               `json:"name"`
	Results []doctor.CheckResult `json:"results"`
}

// SummaryOutput summarizes the check results.
type SummaryOutput struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	Fixable  int  `json:"fixable"`
	AllClear bool `json:"all_clear"`
}

func doctorCommand() error {
	checks := doctor.AllChecks(prefs, prefsPath)
	results := doctor.RunAll(checks)

	if doctorFix {
		results = attemptFixes(checks, results)
	}

	if doctor.HasFailures(results) {
		exitCode = 1
	}

	if jsonFlag {
		return outputDoctorJSON(checks, results)
	}
	return outputDoctorText(checks, results)
}

// attemptFixes tries to fix issues where possible, re-running fixed checks.
func attemptFixes(checks []doctor.Check, results []doctor.CheckResult) []doctor.CheckResult {
	for i, result := range results {
		if result.Fixable && (result.Status == doctor.StatusFail || result.Status == doctor.StatusWarn) {
			if err := checks[i].Fix(); err == nil {
				results[i] = checks[i].Run()
			}
		}
	}
	return results
}

func outputDoctorJSON(checks []doctor.Check, results []doctor.CheckResult) error {
	grouped := make(map[string][]doctor.CheckResult)
	var categoryOrder []string
	for i, check := range checks {
		cat := check.Category()
		if _, exists := grouped[cat]; !exists {
			categoryOrder = append(categoryOrder, cat)
		}
		grouped[cat] = append(grouped[cat], results[i])
	}

	output := DoctorOutput{
		Categories: make([]CategoryOutput, 0, len(categoryOrder)),
	}
	for _, cat := range categoryOrder {
		output.Categories = append(output.Categories, CategoryOutput{
			Name:    cat,
			Results: grouped[cat],
		})
	}

	counts := doctor.CountByStatus(results)
	output.Summary = SummaryOutput{
		Pass:     counts[doctor.StatusPass],
		Warn:     counts[doctor.StatusWarn],
		Fail:     counts[doctor.StatusFail],
		Fixable:  doctor.FixableCount(results),
		AllClear: counts[doctor.StatusWarn] == 0 && counts[doctor.StatusFail] == 0,
	}

	return WriteJSONSuccess(os.Stdout, output)
}

func outputDoctorText(checks []doctor.Check, results []doctor.CheckResult) error {
	headerStyle := lipgloss.NewStyle().Bold(true)

	fmt.Println()
	fmt.Println(headerStyle.Render("llamactl Diagnostic Report"))
	fmt.Println()

	rows := make([]ui.DoctorCheckRow, len(results))
	for i, result := range results {
		rows[i] = ui.DoctorCheckRow{
			Status:     result.Status.String(),
			Category:   checks[i].Category(),
			Message:    fmt.Sprintf("%s: %s", result.Name, result.Message),
			Suggestion: result.Suggestion,
		}
	}
	fmt.Print(ui.RenderDoctorTable(rows))

	fmt.Println(doctor.Summary(results))
	if !doctorFix {
		if fixable := doctor.FixableCount(results); fixable > 0 {
			fmt.Printf("Run 'llamactl doctor --fix' to repair %d fixable issue(s)\n", fixable)
		}
	}

	return nil
}
