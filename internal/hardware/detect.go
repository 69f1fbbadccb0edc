// Package hardware detects the machine's CPU, memory, and GPU so model
// recommendations can be sized to what the box can actually run.
package hardware

import (
	"context"
	"runtime"

	"github.com/llamactl/llamactl/internal/errors"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Info is a snapshot of the hardware relevant to running local models.
type Info struct {
	OS       string `json:"os"`
	Arch     string `json:"arch"`
	Platform string `json:"platform,omitempty"`
	CPUModel string `json:"cpu_model"`
	Cores    int    `json:"cores"`

	TotalRAM     uint64 `json:"total_ram_bytes"`
	AvailableRAM uint64 `json:"available_ram_bytes"`

	GPU *GPU `json:"gpu,omitempty"`
}

// GPU describes a detected graphics device.
type GPU struct {
	Name      string `json:"name"`
	VRAMTotal uint64 `json:"vram_total_bytes"`
	VRAMUsed  uint64 `json:"vram_used_bytes"`

	// Unified marks shared-memory GPUs (Apple Silicon), where the VRAM
	// budget is the system RAM.
	Unified bool `json:"unified"`
}

// Detect gathers a hardware snapshot. GPU detection is best-effort: a machine
// without a GPU (or without nvidia-smi) yields Info.GPU == nil, not an error.
func Detect(ctx context.Context) (*Info, error) {
	info := &Info{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrHardware,
			"Couldn't read system memory",
			"This shouldn't happen - please report this bug")
	}
	info.TotalRAM = vm.Total
	info.AvailableRAM = vm.Available

	if cores, err := cpu.CountsWithContext(ctx, true); err == nil {
		info.Cores = cores
	}
	if cpus, err := cpu.InfoWithContext(ctx); err == nil && len(cpus) > 0 {
		info.CPUModel = cpus[0].ModelName
	}
	if h, err := host.InfoWithContext(ctx); err == nil {
		info.Platform = h.Platform
	}

	info.GPU = detectGPU(ctx, info)

	return info, nil
}

// detectGPU tries nvidia-smi first, then falls back to Apple Silicon unified
// memory detection.
func detectGPU(ctx context.Context, info *Info) *GPU {
	if gpu, err := QueryNvidiaSMI(ctx); err == nil && gpu != nil {
		return gpu
	}

	if info.OS == "darwin" && info.Arch == "arm64" {
		name := "Apple Silicon"
		if info.CPUModel != "" {
			name = info.CPUModel
		}
		return &GPU{
			Name:      name,
			VRAMTotal: info.TotalRAM,
			Unified:   true,
		}
	}

	return nil
}
