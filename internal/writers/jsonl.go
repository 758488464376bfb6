// internal/writers/jsonl.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"

	"fastj/pkg/api"
	"fastj/pkg/fastj"
)

func init() {
	Register(FormatNDJSON, func(w io.Writer, _ Options) RecordWriter {
		bw := bufio.NewWriterSize(w, 64<<10)
		enc := json.NewEncoder(bw)
		enc.SetEscapeHTML(false)
		return &ndjsonWriter{bw: bw, enc: enc}
	})
}

// ndjsonWriter writes each record as one compact JSON line (v1).
type ndjsonWriter struct {
	bw  *bufio.Writer
	enc *json.Encoder
}

func (n *ndjsonWriter) Write(r fastj.Record) error { return n.enc.Encode(api.FromRecord(r)) }
func (n *ndjsonWriter) Flush() error               { return n.bw.Flush() }
func (n *ndjsonWriter) Close() error               { return n.bw.Flush() }
