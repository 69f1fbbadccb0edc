package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llamactl/llamactl/internal/catalog"
	"github.com/llamactl/llamactl/internal/hardware"
	"github.com/llamactl/llamactl/internal/ui"
)

var (
	recommendCategory string
	recommendPull     bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend models that fit your hardware",
	Long: `Detect hardware and list catalog models whose memory requirement fits the
effective memory budget (GPU VRAM when discrete, otherwise RAM).

With --pull, pick one of the recommendations and pull it right away.

Examples:
  llamactl recommend
  llamactl recommend --category code
  llamactl recommend --pull`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return recommendCommand()
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)
	recommendCmd.Flags().StringVar(&recommendCategory, "category", "", "filter by category (chat, code, vision, embedding)")
	recommendCmd.Flags().BoolVar(&recommendPull, "pull", false, "pick one recommendation and pull it")
}

// RecommendOutput is the JSON shape for the recommend command.
type RecommendOutput struct {
	Tier            string          `json:"tier"`
	EffectiveMemory uint64          `json:"effective_memory"`
	Models          []catalog.Entry `json:"models"`
}

func recommendCommand() error {
	info, err := hardware.Detect(cmdContext())
	if err != nil {
		return err
	}

	budget := info.EffectiveMemory()
	entries := loadCatalog()
	if recommendCategory != "" {
		entries = catalog.ByCategory(entries, catalog.Category(recommendCategory))
	}
	recommended := catalog.Recommend(entries, budget)

	if jsonFlag {
		return WriteJSONSuccess(os.Stdout, RecommendOutput{
			Tier:            info.Tier().String(),
			EffectiveMemory: budget,
			Models:          recommended,
		})
	}

	tierStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess).Bold(true)
	fmt.Printf("Tier %s with %s usable for models\n\n",
		tierStyle.Render(info.Tier().String()), humanize.IBytes(budget))

	if len(recommended) == 0 {
		fmt.Println("No catalog models fit the detected memory. Try a quantized model from the ollama library.")
		return nil
	}

	rows := make([][]string, len(recommended))
	for i, e := range recommended {
		rows[i] = []string{
			e.Name,
			humanize.IBytes(uint64(e.SizeBytes)),
			humanize.IBytes(e.MinMemory),
			string(e.Category),
			e.Description,
		}
	}
	columns := []ui.TableColumn{
		{Title: "NAME", Width: 24},
		{Title: "SIZE", Width: 9},
		{Title: "NEEDS", Width: 9},
		{Title: "CATEGORY", Width: 10},
		{Title: "DESCRIPTION", Width: 40},
	}
	fmt.Println(ui.RenderSimpleTable(columns, rows))

	if !recommendPull {
		return nil
	}
	return pickAndPull(recommended)
}

// pickAndPull lets the user select one recommendation and pulls it.
func pickAndPull(recommended []catalog.Entry) error {
	choices := make([]ui.ModelChoice, len(recommended))
	for i, e := range recommended {
		choices[i] = ui.ModelChoice{
			Name:     e.Name,
			Size:     humanize.IBytes(uint64(e.SizeBytes)),
			Category: string(e.Category),
			Summary:  e.Description,
			Tags:     e.Tags,
		}
	}

	selected, err := ui.PickModel("Pull which model?", choices)
	if err != nil {
		return err
	}
	if selected == nil {
		fmt.Println("Cancelled.")
		return nil
	}

	if prefs.UI.ConfirmPulls {
		var confirmed bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Pull %s (%s)?", selected.Name, selected.Size)).
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil || !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	return pullModel(selected.Name)
}
