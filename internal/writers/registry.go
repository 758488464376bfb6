// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"fastj/pkg/fastj"
)

// Output format names.
const (
	FormatFASTJ  = "fastj"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
)

// RecordWriter serializes records one at a time. Close finishes the
// document and flushes; Flush only pushes out what is buffered, leaving the
// document open (used when a run fails part way). Neither closes the
// destination.
type RecordWriter interface {
	Write(fastj.Record) error
	Flush() error
	Close() error
}

// Options tune the JSON writers.
type Options struct {
	Indent string // json only; "" means compact
}

// Factory builds a RecordWriter on w.
type Factory func(w io.Writer, opt Options) RecordWriter

// Writer registry (format → factory). Register in init() blocks.
var factories = map[string]Factory{}

// Register adds or replaces the factory for format (last wins).
func Register(format string, fn Factory) { factories[format] = fn }

// New dispatches to the factory registered for format.
func New(format string, w io.Writer, opt Options) (RecordWriter, error) {
	fn, ok := factories[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, opt), nil
}

// Formats lists the registered format names in sorted order.
func Formats() []string {
	out := make([]string, 0, len(factories))
	for k := range factories {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
