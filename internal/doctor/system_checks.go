package doctor

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v3/disk"

	"github.com/llamactl/llamactl/internal/hardware"
)

// minFreeDisk is the free space below which pulling a mid-size model is
// likely to fail.
const minFreeDisk = 10 << 30

// DiskSpaceCheck warns when the home filesystem is low on space for model
// downloads.
type DiskSpaceCheck struct {
	// Path to measure. Defaults to the user's home directory.
	Path string
}

func (c *DiskSpaceCheck) Name() string     { return "disk space" }
func (c *DiskSpaceCheck) Category() string { return "SYSTEM" }

func (c *DiskSpaceCheck) Run() CheckResult {
	path := c.Path
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			path = "/"
		} else {
			path = home
		}
	}

	usage, err := disk.Usage(path)
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusWarn,
			Message: "couldn't measure free space on " + path,
		}
	}

	if usage.Free < minFreeDisk {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("only %s free on %s", humanize.IBytes(usage.Free), path),
			Suggestion: "Remove unused models with 'llamactl rm' to reclaim space",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("%s free on %s", humanize.IBytes(usage.Free), path),
	}
}

func (c *DiskSpaceCheck) Fix() error { return nil }

// HardwareCheck verifies hardware detection returns sane values, since the
// model recommendations depend on it.
type HardwareCheck struct{}

func (c *HardwareCheck) Name() string     { return "hardware detection" }
func (c *HardwareCheck) Category() string { return "SYSTEM" }

func (c *HardwareCheck) Run() CheckResult {
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	info, err := hardware.Detect(ctx)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "hardware detection failed",
			Suggestion: "Run with LLAMACTL_DEBUG=1 for details",
		}
	}

	if info.TotalRAM == 0 {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusWarn,
			Message: "detected 0 bytes of RAM, recommendations will be off",
		}
	}

	return CheckResult{
		Name:   c.Name(),
		Status: StatusPass,
		Message: fmt.Sprintf("%s RAM, %s tier",
			humanize.IBytes(info.TotalRAM), info.Tier()),
	}
}

func (c *HardwareCheck) Fix() error { return nil }
