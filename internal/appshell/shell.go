// internal/appshell/shell.go

// Package appshell is the shared process entry for the aligner binaries:
// signal-aware context, help on empty argv, and exit-code normalization.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is an application entry point in the shape of app.RunContext.
type RunFunc func(context.Context, []string, io.Writer, io.Writer) int

// Main runs the application with SIGINT/SIGTERM cancellation wired to the
// context and exits the process with the returned code.
func Main(run RunFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	code := run(ctx, argv, os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = 130
	}

	stop()
	os.Exit(code)
}
