// Package appshell wires a Run function to the process: signals, stdio, and
// the exit code.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Main runs run with the process arguments and exits with its code.
// SIGINT and SIGTERM cancel the context; a cancelled run exits 130.
// SIGPIPE is ignored so a closed stdout surfaces as an EPIPE write error.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	signal.Ignore(syscall.SIGPIPE)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = 130
	}

	stop()
	os.Exit(code)
}
