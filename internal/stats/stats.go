// Package stats summarizes FASTJ inputs for the stats command.
package stats

import (
	"sort"

	"fastj/pkg/fastj"
)

// Summary accumulates counts for one input.
type Summary struct {
	Input        string
	Records      int
	Residues     int
	WithID       int
	WithMetadata int

	keys map[string]struct{}
}

// New returns an empty summary labelled input.
func New(input string) *Summary {
	return &Summary{Input: input, keys: map[string]struct{}{}}
}

// Add counts r.
func (s *Summary) Add(r fastj.Record) {
	s.Records++
	s.Residues += len(r.Sequence)
	if r.ID != "" {
		s.WithID++
	}
	if fastj.HasMetadata(r.Metadata) {
		s.WithMetadata++
		if md, ok := r.Metadata.(map[string]any); ok {
			for k := range md {
				s.keys[k] = struct{}{}
			}
		}
	}
}

// Merge folds o into s.
func (s *Summary) Merge(o *Summary) {
	s.Records += o.Records
	s.Residues += o.Residues
	s.WithID += o.WithID
	s.WithMetadata += o.WithMetadata
	for k := range o.keys {
		s.keys[k] = struct{}{}
	}
}

// MetadataKeys returns the distinct top-level metadata keys seen, sorted.
// Non-object metadata counts toward WithMetadata but has no keys.
func (s *Summary) MetadataKeys() []string {
	out := make([]string, 0, len(s.keys))
	for k := range s.keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
