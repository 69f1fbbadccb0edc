package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// rootCtx is cancelled on SIGINT/SIGTERM so subprocesses and HTTP calls stop
// cleanly on Ctrl+C.
var rootCtx = context.Background()

// cmdContext returns the signal-aware context for command work.
func cmdContext() context.Context {
	return rootCtx
}

// withSignalContext installs signal handling around fn.
func withSignalContext(fn func()) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	rootCtx = ctx
	fn()
}
