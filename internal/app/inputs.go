package app

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"fastj/internal/cliutil"
	"fastj/internal/source"
	"fastj/internal/writers"
)

// forEachInput expands args and calls fn with each opened input in order.
// Inputs are opened one at a time and closed before the next is opened.
func forEachInput(ctx context.Context, args []string, fn func(name string, r io.Reader) error) error {
	paths, err := cliutil.ExpandInputs(args)
	if err != nil {
		return &usageError{err: err}
	}
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		rc, err := source.Open(p)
		if err != nil {
			return &ioError{err: err}
		}
		err = fn(source.Name(p), rc)
		_ = rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// finish closes w after a clean run. After a failure it only flushes, so
// records already written reach the output but the document is left open.
func finish(w writers.RecordWriter, runErr error) error {
	if runErr != nil {
		if ferr := w.Flush(); ferr != nil && writers.IsBrokenPipe(ferr) {
			return ferr
		}
		return runErr
	}
	if err := w.Close(); err != nil {
		return &ioError{err: fmt.Errorf("write output: %w", err)}
	}
	return nil
}

// writeErr wraps a failed record write. Codec errors pass through so they
// keep their exit code; anything else is an output failure.
func writeErr(name string, index int, err error) error {
	if isDataError(err) {
		return fmt.Errorf("%s: record %d: %w", name, index, err)
	}
	return &ioError{err: fmt.Errorf("write output: %w", err)}
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageErrorf("%s takes no arguments, got %q", cmd.CommandPath(), args)
	}
	return nil
}

// readErr wraps an error that stopped reading input name. Malformed content
// keeps its data-error identity; anything else is an input failure.
func readErr(name string, index int, err error) error {
	if isDataError(err) {
		return fmt.Errorf("%s: record %d: %w", name, index, err)
	}
	return &ioError{err: fmt.Errorf("%s: %w", name, err)}
}
