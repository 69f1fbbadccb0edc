package doctor

import (
	"context"
	"fmt"
	"time"

	"github.com/llamactl/llamactl/internal/ollama"
)

const checkTimeout = 5 * time.Second

// BinaryCheck verifies the ollama binary is on PATH.
type BinaryCheck struct {
	Runner *ollama.Runner
}

func (c *BinaryCheck) Name() string     { return "ollama binary" }
func (c *BinaryCheck) Category() string { return "OLLAMA" }

func (c *BinaryCheck) Run() CheckResult {
	path, err := c.Runner.Path()
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "ollama is not installed",
			Suggestion: "Run 'llamactl install' to install it",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	version, err := c.Runner.Version(ctx)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("found at %s but 'ollama --version' failed", path),
			Suggestion: "Reinstall with 'llamactl install'",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("v%s at %s", version, path),
	}
}

func (c *BinaryCheck) Fix() error { return nil }

// ServerCheck verifies the ollama server answers on its API port.
type ServerCheck struct {
	Client *ollama.Client
}

func (c *ServerCheck) Name() string     { return "ollama server" }
func (c *ServerCheck) Category() string { return "OLLAMA" }

func (c *ServerCheck) Run() CheckResult {
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	if err := c.Client.Ping(ctx); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "server is not responding",
			Suggestion: "Start it with 'ollama serve' or by launching the Ollama app",
		}
	}

	version, err := c.Client.Version(ctx)
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "server is responding",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("server v%s is responding", version),
	}
}

func (c *ServerCheck) Fix() error { return nil }

// UpdateCheck reports whether a newer ollama release is available. It never
// fails hard; network trouble or a disabled check just passes quietly.
type UpdateCheck struct {
	Installer *ollama.Installer
	Runner    *ollama.Runner
}

func (c *UpdateCheck) Name() string     { return "ollama version" }
func (c *UpdateCheck) Category() string { return "OLLAMA" }

func (c *UpdateCheck) Run() CheckResult {
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	current, err := c.Runner.Version(ctx)
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "skipped (ollama not installed)",
		}
	}

	latest := c.Installer.LatestVersion(ctx)
	if latest == "" {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: fmt.Sprintf("v%s (release check unavailable)", current),
		}
	}

	if ollama.IsNewerVersion(current, latest) {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("v%s installed, v%s available", current, latest),
			Suggestion: "Run 'llamactl install' to update",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("v%s is up to date", current),
	}
}

func (c *UpdateCheck) Fix() error { return nil }
