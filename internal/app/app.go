// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"fastj/internal/convert"
	"fastj/internal/writers"
	"fastj/pkg/fastj"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitData        = 1
	ExitUsage       = 2
	ExitIO          = 3
	ExitInterrupted = 130
)

// RunContext executes the fastj command line and returns the process exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	root := newRootCommand(stdout, stderr)
	root.SetArgs(argv)
	err := root.ExecuteContext(ctx)
	code := ExitCode(err)
	if err != nil && code != ExitOK && code != ExitInterrupted {
		_, _ = fmt.Fprintf(stderr, "fastj: %v\n", err)
		if code == ExitUsage {
			_, _ = fmt.Fprintln(stderr, "Run 'fastj --help' for usage.")
		}
	}
	return code
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// usageError marks bad flags, arguments, or configuration.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, a ...any) error {
	return &usageError{err: fmt.Errorf(format, a...)}
}

// ioError marks failures opening, reading, or writing streams.
type ioError struct{ err error }

func (e *ioError) Error() string { return e.err.Error() }
func (e *ioError) Unwrap() error { return e.err }

// ExitCode maps an error returned by a command to an exit code. A closed
// stdout pipe is success: the consumer simply stopped reading.
func ExitCode(err error) int {
	if err == nil || writers.IsBrokenPipe(err) {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitInterrupted
	}

	var uerr *usageError
	if errors.As(err, &uerr) {
		return ExitUsage
	}

	if isDataError(err) {
		return ExitData
	}

	var ioerr *ioError
	var perr *os.PathError
	if errors.As(err, &ioerr) || errors.As(err, &perr) {
		return ExitIO
	}
	return ExitData
}

// isDataError reports codec and document errors: the input, not the
// environment, is at fault.
func isDataError(err error) bool {
	var (
		merr *fastj.MalformedInputError
		derr *fastj.MetadataDecodeError
		ierr *fastj.InvalidIDError
		jerr *convert.DocumentError
	)
	return errors.As(err, &merr) || errors.As(err, &derr) || errors.As(err, &ierr) ||
		errors.As(err, &jerr) || errors.Is(err, fastj.ErrEmptyRecord)
}
