package convert

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"

	"fastj/pkg/fastj"
)

func decodeAll(t *testing.T, in string) ([]fastj.Record, error) {
	t.Helper()
	d := NewDecoder(strings.NewReader(in))
	var out []fastj.Record
	for d.Next() {
		out = append(out, d.Record())
	}
	return out, d.Err()
}

func TestDecoderLayouts(t *testing.T) {
	want := []fastj.Record{
		{ID: "a", Metadata: map[string]any{"n": json.Number("1")}, Sequence: "AC"},
		{Sequence: "GG"},
	}
	tests := map[string]string{
		"array":  ` [ {"id":"a","metadata":{"n":1},"sequence":"AC"}, {"sequence":"GG","metadata":null} ]`,
		"ndjson": "{\"id\":\"a\",\"metadata\":{\"n\":1},\"sequence\":\"AC\"}\n\n{\"sequence\":\"GG\"}\n",
	}
	for name, in := range tests {
		got, err := decodeAll(t, in)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("%s: got %#v, want %#v", name, got, want)
		}
	}
}

func TestDecoderEmpty(t *testing.T) {
	for _, in := range []string{"", "  \n", "[]", "[\n]\n"} {
		got, err := decodeAll(t, in)
		if err != nil || len(got) != 0 {
			t.Fatalf("%q: got %v, %v", in, got, err)
		}
	}
}

func TestDecoderErrors(t *testing.T) {
	_, err := decodeAll(t, "{\"id\":\"a\"}\n[1,2]\n")
	var derr *DocumentError
	if !errors.As(err, &derr) || derr.Index != 1 {
		t.Fatalf("expected DocumentError at index 1, got %v", err)
	}

	if _, err := decodeAll(t, `[{"id":"a"}`); err == nil {
		t.Fatal("expected error for unterminated array")
	}
}

func TestDecoderAll(t *testing.T) {
	d := NewDecoder(strings.NewReader("{\"id\":\"a\"}\n{\"id\":\"b\",\"metadata\":7}\n{\"id\":\n"))
	var ids []string
	var last error
	for rec, err := range d.All() {
		if err != nil {
			last = err
			continue
		}
		ids = append(ids, rec.ID)
	}
	if strings.Join(ids, ",") != "a,b" {
		t.Fatalf("unexpected ids %v", ids)
	}
	var derr *DocumentError
	if !errors.As(last, &derr) || derr.Index != 2 {
		t.Fatalf("expected DocumentError at index 2 as the last element, got %v", last)
	}
	if d.Count() != 2 {
		t.Fatalf("Count = %d, want 2", d.Count())
	}
}

func TestAssignID(t *testing.T) {
	r := AssignID(fastj.Record{ID: " ", Sequence: "A"})
	if _, err := uuid.Parse(r.ID); err != nil {
		t.Fatalf("expected uuid id, got %q", r.ID)
	}
	if kept := AssignID(fastj.Record{ID: "x"}); kept.ID != "x" {
		t.Fatalf("existing id replaced: %q", kept.ID)
	}
}
