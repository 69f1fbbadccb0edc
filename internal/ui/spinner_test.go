package ui

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureOutput collects spinner writes safely across goroutines.
type captureOutput struct {
	mu    sync.Mutex
	parts []string
}

func (c *captureOutput) write(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.parts = append(c.parts, s)
}

func (c *captureOutput) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return strings.Join(c.parts, "")
}

func TestSpinner_SuccessLifecycle(t *testing.T) {
	out := &captureOutput{}
	s := NewSpinner("Checking server")
	s.SetOutput(out.write)

	assert.Equal(t, SpinnerPending, s.State())

	s.Start()
	assert.Equal(t, SpinnerInProgress, s.State())

	time.Sleep(100 * time.Millisecond)
	s.Success()

	assert.Equal(t, SpinnerSuccess, s.State())
	assert.Contains(t, out.String(), "Checking server")
	assert.Contains(t, out.String(), SymbolSuccess)
}

func TestSpinner_Fail(t *testing.T) {
	out := &captureOutput{}
	s := NewSpinner("Pulling model")
	s.SetOutput(out.write)

	s.Start()
	s.Fail()

	assert.Equal(t, SpinnerFailed, s.State())
	assert.Contains(t, out.String(), SymbolFail)
}

func TestSpinner_Skip(t *testing.T) {
	out := &captureOutput{}
	s := NewSpinner("Release check")
	s.SetOutput(out.write)

	s.Start()
	s.Skip()

	assert.Equal(t, SpinnerSkipped, s.State())
	assert.Contains(t, out.String(), SymbolSkipped)
}

func TestSpinner_DoubleStartIsSafe(t *testing.T) {
	s := NewSpinner("x")
	s.SetOutput(func(string) {})

	s.Start()
	s.Start()
	s.Stop()
	s.Stop()
}

func TestSpinner_SetLabel(t *testing.T) {
	out := &captureOutput{}
	s := NewSpinner("first")
	s.SetOutput(out.write)

	s.Start()
	s.SetLabel("second")
	s.Success()

	require.Contains(t, out.String(), "second")
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{50 * time.Millisecond, "0.05s"},
		{300 * time.Millisecond, "0.3s"},
		{1200 * time.Millisecond, "1.2s"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, formatDuration(tc.d))
	}
}
