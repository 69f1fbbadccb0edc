package hardware

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// nvidiaSMIArgs queries name, total and used memory as headerless CSV in MiB.
var nvidiaSMIArgs = []string{
	"--query-gpu=name,memory.total,memory.used",
	"--format=csv,noheader,nounits",
}

// QueryNvidiaSMI runs nvidia-smi and parses the first GPU it reports.
// Returns nil, nil when the binary is absent or reports no devices.
func QueryNvidiaSMI(ctx context.Context) (*GPU, error) {
	path, err := exec.LookPath("nvidia-smi")
	if err != nil {
		return nil, nil
	}

	out, err := exec.CommandContext(ctx, path, nvidiaSMIArgs...).Output()
	if err != nil {
		// nvidia-smi exists but can't talk to a device (no driver, no GPU).
		return nil, nil
	}

	return ParseNvidiaSMI(string(out))
}

// ParseNvidiaSMI parses nvidia-smi CSV output of the form:
//
//	NVIDIA GeForce RTX 3080, 10240, 2048
//
// Multi-GPU machines report one line per device; only the first is used.
// Returns nil, nil for empty output or common error indicators, so a missing
// GPU never surfaces as an error.
func ParseNvidiaSMI(output string) (*GPU, error) {
	output = strings.TrimSpace(output)
	if output == "" {
		return nil, nil
	}

	lower := strings.ToLower(output)
	if strings.Contains(lower, "no devices") ||
		strings.Contains(lower, "not found") ||
		strings.Contains(lower, "failed") ||
		strings.Contains(lower, "error") {
		return nil, nil
	}

	line := output
	if i := strings.IndexByte(output, '\n'); i >= 0 {
		line = output[:i]
	}

	fields := strings.Split(line, ",")
	if len(fields) < 3 {
		return nil, fmt.Errorf("nvidia-smi output has insufficient fields: expected 3, got %d", len(fields))
	}

	gpu := &GPU{Name: strings.TrimSpace(fields[0])}

	total, err := parseMiB(fields[1])
	if err != nil {
		return nil, fmt.Errorf("failed to parse GPU memory total: %w", err)
	}
	gpu.VRAMTotal = total

	used, err := parseMiB(fields[2])
	if err != nil {
		return nil, fmt.Errorf("failed to parse GPU memory used: %w", err)
	}
	gpu.VRAMUsed = used

	return gpu, nil
}

// parseMiB converts a MiB field to bytes. "[N/A]" and empty values parse as 0.
func parseMiB(field string) (uint64, error) {
	s := strings.TrimSpace(field)
	if s == "" || s == "[N/A]" {
		return 0, nil
	}
	mib, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return mib * 1024 * 1024, nil
}
