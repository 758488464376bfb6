package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/spf13/cobra"

	"fastj/internal/convert"
	"fastj/pkg/fastj"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"broken pipe", &ioError{err: fmt.Errorf("write output: %w", syscall.EPIPE)}, ExitOK},
		{"cancelled", fmt.Errorf("x: %w", context.Canceled), ExitInterrupted},
		{"usage", usageErrorf("bad flag"), ExitUsage},
		{"malformed", fmt.Errorf("in: %w", &fastj.MalformedInputError{Line: "AC"}), ExitData},
		{"metadata", &fastj.MetadataDecodeError{Text: "{", Err: errors.New("eof")}, ExitData},
		{"invalid id", &fastj.InvalidIDError{ID: "a b"}, ExitData},
		{"empty record", fmt.Errorf("w: %w", fastj.ErrEmptyRecord), ExitData},
		{"document", &convert.DocumentError{Index: 2, Err: errors.New("bad")}, ExitData},
		{"io", &ioError{err: errors.New("disk")}, ExitIO},
		{"path", &os.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist}, ExitIO},
		{"other", errors.New("boom"), ExitData},
	}
	for _, tc := range tests {
		if got := ExitCode(tc.err); got != tc.want {
			t.Errorf("%s: ExitCode = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestCommandsReturnConfigError(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(bad, []byte("[stats]\nstyle = \"fancy\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	builders := map[string]func(*commandContext) *cobra.Command{
		"to-json":   newToJSONCommand,
		"from-json": newFromJSONCommand,
		"stats":     newStatsCommand,
	}
	for name, build := range builders {
		ctx := newCommandContext(&globalFlags{configPath: bad}, io.Discard)
		cmd := build(ctx)
		cmd.SetContext(context.Background())
		// Run directly, without the root's PersistentPreRunE.
		err := cmd.RunE(cmd, nil)
		if ExitCode(err) != ExitUsage {
			t.Fatalf("%s: expected usage error from config, got %v", name, err)
		}
	}
}
