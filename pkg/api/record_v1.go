// pkg/api/record_v1.go
package api

import "fastj/pkg/fastj"

// RecordV1 is the stable JSON/NDJSON document for one FASTJ record.
// Keep fields, names, and types stable. Metadata is null when the title
// carried none; otherwise it is whatever JSON value the title held.
type RecordV1 struct {
	ID       string         `json:"id"`
	Metadata any    `json:"metadata"`
	Sequence string         `json:"sequence"`
}

// FromRecord converts a parsed record to its wire form.
func FromRecord(r fastj.Record) RecordV1 {
	return RecordV1{ID: r.ID, Metadata: r.Metadata, Sequence: r.Sequence}
}

// Record converts a wire document back to a fastj.Record.
func (d RecordV1) Record() fastj.Record {
	return fastj.Record{ID: d.ID, Metadata: d.Metadata, Sequence: d.Sequence}
}
