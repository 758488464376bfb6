package integration

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"syscall"
	"testing"

	"fastj/internal/app"
)

func TestCancelledRunExit130(t *testing.T) {
	dir := isolate(t)
	fa := write(t, filepath.Join(dir, "in.fastj"), unsorted)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // already cancelled

	code := app.RunContext(ctx, []string{"format", fa}, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}

// closedPipe fails every write the way a stdout whose reader exited does.
type closedPipe struct{}

func (closedPipe) Write([]byte) (int, error) { return 0, syscall.EPIPE }

func TestBrokenPipeIsSuccess(t *testing.T) {
	dir := isolate(t)
	fa := write(t, filepath.Join(dir, "in.fastj"), unsorted)

	for _, argv := range [][]string{{"format", fa}, {"to-json", fa}, {"stats", fa}} {
		var errBuf bytes.Buffer
		code := app.RunContext(context.Background(), argv, closedPipe{}, &errBuf)
		if code != 0 {
			t.Fatalf("%v: expected exit 0 on broken pipe, got %d (%s)", argv, code, errBuf.String())
		}
		if errBuf.Len() != 0 {
			t.Fatalf("%v: broken pipe should be silent, got %q", argv, errBuf.String())
		}
	}
}
