package source

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

const plain = ">seq1 {\"a\":1}\nACGT\n>seq2\nNNnn\n"

func writeGz(t *testing.T, path, data string) {
	t.Helper()
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
}

func readAll(t *testing.T, path string) string {
	t.Helper()
	rc, err := Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(b)
}

func TestOpenPlainAndGzip(t *testing.T) {
	dir := t.TempDir()

	fa := filepath.Join(dir, "x.fastj")
	if err := os.WriteFile(fa, []byte(plain), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := readAll(t, fa); got != plain {
		t.Fatalf("plain: got %q", got)
	}

	// Magic number wins even without the suffix.
	gz := filepath.Join(dir, "compressed.fastj")
	writeGz(t, gz, plain)
	if got := readAll(t, gz); got != plain {
		t.Fatalf("gzip: got %q", got)
	}
}

func TestOpenStdin(t *testing.T) {
	orig := os.Stdin
	r, w, _ := os.Pipe()
	os.Stdin = r
	defer func() { os.Stdin = orig }()

	go func() {
		_, _ = io.WriteString(w, plain)
		_ = w.Close()
	}()

	if got := readAll(t, Stdin); got != plain {
		t.Fatalf("stdin: got %q", got)
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.fastj")); !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestName(t *testing.T) {
	if Name("-") != "<stdin>" || Name("a.fastj") != "a.fastj" {
		t.Fatal("unexpected names")
	}
}
