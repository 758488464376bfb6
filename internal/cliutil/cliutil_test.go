package cliutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandInputs(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.fastj")
	b := filepath.Join(dir, "b.fastj")
	_ = os.WriteFile(a, []byte(">a\nA\n"), 0o644)
	_ = os.WriteFile(b, []byte(">b\nA\n"), 0o644)

	got, err := ExpandInputs([]string{filepath.Join(dir, "*.fastj"), "-"})
	if err != nil || len(got) != 3 || got[2] != "-" {
		t.Fatalf("expand: err=%v got=%v", err, got)
	}
}

func TestExpandInputsDefaultsToStdin(t *testing.T) {
	got, err := ExpandInputs(nil)
	if err != nil || len(got) != 1 || got[0] != "-" {
		t.Fatalf("expected stdin, got %v (%v)", got, err)
	}
}

func TestExpandInputsNoMatch(t *testing.T) {
	if _, err := ExpandInputs([]string{filepath.Join(t.TempDir(), "*.none")}); err == nil {
		t.Fatal("expected error for unmatched glob")
	}
}
