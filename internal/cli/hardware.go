package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llamactl/llamactl/internal/hardware"
	"github.com/llamactl/llamactl/internal/ui"
)

var hardwareCmd = &cobra.Command{
	Use:   "hardware",
	Short: "Show detected hardware and capability tier",
	Long: `Detect CPU, RAM, and GPU, and show the capability tier used for model
recommendations.

The tier is based on GPU VRAM when a discrete GPU is present, otherwise on
total system RAM (Apple Silicon unified memory counts as RAM).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return hardwareCommand()
	},
}

func init() {
	rootCmd.AddCommand(hardwareCmd)
}

// HardwareOutput is the JSON shape for the hardware command.
type HardwareOutput struct {
	Platform     string `json:"platform"`
	Arch         string `json:"arch"`
	CPU          string `json:"cpu"`
	Cores        int    `json:"cores"`
	TotalRAM     uint64 `json:"total_ram"`
	AvailableRAM uint64 `json:"available_ram"`
	GPU          string `json:"gpu,omitempty"`
	VRAM         uint64 `json:"vram,omitempty"`
	UnifiedMem   bool   `json:"unified_memory,omitempty"`
	Tier         string `json:"tier"`
	EffectiveMem uint64 `json:"effective_memory"`
}

func hardwareCommand() error {
	info, err := hardware.Detect(cmdContext())
	if err != nil {
		return err
	}

	if jsonFlag {
		out := HardwareOutput{
			Platform:     info.Platform,
			Arch:         info.Arch,
			CPU:          info.CPUModel,
			Cores:        info.Cores,
			TotalRAM:     info.TotalRAM,
			AvailableRAM: info.AvailableRAM,
			Tier:         info.Tier().String(),
			EffectiveMem: info.EffectiveMemory(),
		}
		if info.GPU != nil {
			out.GPU = info.GPU.Name
			out.VRAM = info.GPU.VRAMTotal
			out.UnifiedMem = info.GPU.Unified
		}
		return WriteJSONSuccess(os.Stdout, out)
	}

	labelStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)
	tierStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess).Bold(true)

	fmt.Printf("%s %s (%s)\n", labelStyle.Render("platform:"), info.Platform, info.Arch)
	fmt.Printf("%s %s (%d cores)\n", labelStyle.Render("cpu:     "), info.CPUModel, info.Cores)
	fmt.Printf("%s %s total, %s available\n", labelStyle.Render("ram:     "),
		humanize.IBytes(info.TotalRAM), humanize.IBytes(info.AvailableRAM))

	if info.GPU != nil {
		if info.GPU.Unified {
			fmt.Printf("%s %s (unified memory)\n", labelStyle.Render("gpu:     "), info.GPU.Name)
		} else {
			fmt.Printf("%s %s, %s VRAM\n", labelStyle.Render("gpu:     "),
				info.GPU.Name, humanize.IBytes(info.GPU.VRAMTotal))
		}
	} else {
		fmt.Printf("%s none detected\n", labelStyle.Render("gpu:     "))
	}

	fmt.Printf("%s %s (%s usable for models)\n", labelStyle.Render("tier:    "),
		tierStyle.Render(info.Tier().String()), humanize.IBytes(info.EffectiveMemory()))

	return nil
}
