package writers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"fastj/pkg/fastj"
)

var sample = []fastj.Record{
	{ID: "a", Metadata: map[string]any{"virus": "flu", "date": "2017-05-04"}, Sequence: "ATCG"},
	{Sequence: "GG"},
}

func writeAll(t *testing.T, format string, opt Options, recs []fastj.Record) string {
	t.Helper()
	var b bytes.Buffer
	w, err := New(format, &b, opt)
	if err != nil {
		t.Fatalf("New(%q): %v", format, err)
	}
	for _, r := range recs {
		if err := w.Write(r); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return b.String()
}

func TestUnknownFormatError(t *testing.T) {
	_, err := New("nope-format", &bytes.Buffer{}, Options{})
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("want 'unknown output format' error, got: %v", err)
	}
}

func TestFormatsRegistered(t *testing.T) {
	got := strings.Join(Formats(), ",")
	if got != "fastj,json,ndjson" {
		t.Fatalf("unexpected formats %q", got)
	}
}

func TestFASTJWriter(t *testing.T) {
	got := writeAll(t, FormatFASTJ, Options{}, sample)
	want := `>a {"date":"2017-05-04","virus":"flu"}` + "\nATCG\n>\nGG\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestJSONWriterCompact(t *testing.T) {
	got := writeAll(t, FormatJSON, Options{}, sample)
	want := `[{"id":"a","metadata":{"date":"2017-05-04","virus":"flu"},"sequence":"ATCG"},{"id":"","metadata":null,"sequence":"GG"}]` + "\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestJSONWriterIndentedIsValid(t *testing.T) {
	got := writeAll(t, FormatJSON, Options{Indent: "  "}, sample)
	var docs []map[string]any
	if err := json.Unmarshal([]byte(got), &docs); err != nil {
		t.Fatalf("invalid JSON %q: %v", got, err)
	}
	if len(docs) != 2 || docs[0]["id"] != "a" {
		t.Fatalf("unexpected docs %v", docs)
	}
	if !strings.HasPrefix(got, "[\n  {\n    \"id\": \"a\",") {
		t.Fatalf("unexpected layout:\n%s", got)
	}
}

func TestJSONWriterEmpty(t *testing.T) {
	if got := writeAll(t, FormatJSON, Options{Indent: "  "}, nil); got != "[]\n" {
		t.Fatalf("got %q", got)
	}
}

func TestNDJSONWriter(t *testing.T) {
	got := writeAll(t, FormatNDJSON, Options{}, sample)
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", got)
	}
	if lines[1] != `{"id":"","metadata":null,"sequence":"GG"}` {
		t.Fatalf("unexpected line %q", lines[1])
	}
}
