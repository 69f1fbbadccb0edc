package ollama

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"strings"

	"github.com/llamactl/llamactl/internal/errors"
	"github.com/llamactl/llamactl/internal/logger"
)

// Runner shells out to the ollama CLI for the operations the HTTP API
// doesn't cover well: pulls with progress, interactive runs, removal.
type Runner struct {
	bin string
	log logger.Logger
}

// NewRunner creates a Runner. An empty bin means "ollama" resolved via PATH.
func NewRunner(bin string) *Runner {
	if bin == "" {
		bin = "ollama"
	}
	return &Runner{bin: bin, log: logger.NewEnvLogger("[ollama]")}
}

// Installed reports whether the ollama binary can be found.
func (r *Runner) Installed() bool {
	_, err := exec.LookPath(r.bin)
	return err == nil
}

// Path resolves the binary's absolute path.
func (r *Runner) Path() (string, error) {
	path, err := exec.LookPath(r.bin)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrOllama,
			"ollama is not installed",
			"Run 'llamactl install' to set it up")
	}
	return path, nil
}

var versionPattern = regexp.MustCompile(`(\d+\.\d+\.?\d*)`)

// Version returns the CLI's version, parsed from `ollama --version` output
// like "ollama version is 0.3.12".
func (r *Runner) Version(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, r.bin, "--version").Output()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrOllama,
			"Couldn't get the ollama version",
			"Check that 'ollama --version' works")
	}

	m := versionPattern.FindStringSubmatch(string(out))
	if len(m) < 2 {
		return "unknown", nil
	}
	return m[1], nil
}

// InstalledModel is one row of `ollama list` output.
type InstalledModel struct {
	Name     string `json:"name"`
	ID       string `json:"id"`
	Size     string `json:"size"`
	Modified string `json:"modified"`
}

// List returns the locally installed models via the CLI.
func (r *Runner) List(ctx context.Context) ([]InstalledModel, error) {
	out, err := exec.CommandContext(ctx, r.bin, "list").Output()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrOllama,
			"Couldn't list installed models",
			"Check that the ollama server is running ('ollama serve')")
	}
	return ParseList(string(out)), nil
}

// ParseList parses `ollama list` tabular output:
//
//	NAME            ID              SIZE    MODIFIED
//	llama3.2:3b     a80c4f17acd5    2.0 GB  3 days ago
//
// The size and modified columns contain spaces, so the line is split on runs
// of two or more spaces rather than individual fields.
func ParseList(output string) []InstalledModel {
	var models []InstalledModel

	scanner := bufio.NewScanner(strings.NewReader(output))
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if first {
			first = false
			if strings.HasPrefix(strings.ToUpper(line), "NAME") {
				continue
			}
		}

		cols := splitColumns(line)
		if len(cols) < 1 {
			continue
		}

		m := InstalledModel{Name: cols[0]}
		if len(cols) > 1 {
			m.ID = cols[1]
		}
		if len(cols) > 2 {
			m.Size = cols[2]
		}
		if len(cols) > 3 {
			m.Modified = cols[3]
		}
		models = append(models, m)
	}

	return models
}

var columnGap = regexp.MustCompile(`\s{2,}`)

func splitColumns(line string) []string {
	return columnGap.Split(line, -1)
}

// Pull downloads a model, streaming the CLI's progress output to out.
func (r *Runner) Pull(ctx context.Context, model string, out io.Writer) error {
	r.log.Debug("pulling %s", model)

	cmd := exec.CommandContext(ctx, r.bin, "pull", model)
	cmd.Stdout = out
	cmd.Stderr = out

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return errors.WrapWithCode(ctx.Err(), errors.ErrOllama,
				fmt.Sprintf("Pull of '%s' was cancelled", model), "")
		}
		return errors.WrapWithCode(err, errors.ErrOllama,
			fmt.Sprintf("Couldn't pull '%s'", model),
			"Check the model name and your network connection")
	}
	return nil
}

// Run starts an interactive model session, wiring the caller's stdio through.
// Returns the CLI's exit code; a non-zero exit is not an error, matching how
// a shell would treat it.
func (r *Runner) Run(ctx context.Context, model string, args []string, stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	cmdArgs := append([]string{"run", model}, args...)
	cmd := exec.CommandContext(ctx, r.bin, cmdArgs...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return -1, errors.WrapWithCode(err, errors.ErrExec,
			fmt.Sprintf("Couldn't run '%s'", model),
			"Check that ollama is installed and the server is running")
	}
	return 0, nil
}

// Remove deletes an installed model.
func (r *Runner) Remove(ctx context.Context, model string) error {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.bin, "rm", model)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return errors.WrapWithCode(fmt.Errorf("%s", detail), errors.ErrOllama,
			fmt.Sprintf("Couldn't remove '%s'", model),
			"Run 'llamactl models' to see what's installed")
	}
	return nil
}
