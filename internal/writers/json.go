// internal/writers/json.go
package writers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"

	"fastj/pkg/api"
	"fastj/pkg/fastj"
)

func init() {
	Register(FormatJSON, func(w io.Writer, opt Options) RecordWriter {
		return &jsonArrayWriter{bw: bufio.NewWriterSize(w, 64<<10), indent: opt.Indent}
	})
}

// jsonArrayWriter streams a single JSON array of v1 documents. Elements are
// written as they arrive; nothing is held back except the bufio buffer.
type jsonArrayWriter struct {
	bw     *bufio.Writer
	indent string
	n      int
	buf    bytes.Buffer
}

func (j *jsonArrayWriter) Write(r fastj.Record) error {
	j.buf.Reset()
	enc := json.NewEncoder(&j.buf)
	enc.SetEscapeHTML(false)
	if j.indent != "" {
		enc.SetIndent(j.indent, j.indent)
	}
	if err := enc.Encode(api.FromRecord(r)); err != nil {
		return err
	}
	doc := bytes.TrimSuffix(j.buf.Bytes(), []byte{'\n'})

	sep := ","
	if j.n == 0 {
		sep = "["
	}
	if j.indent != "" {
		sep += "\n" + j.indent
	}
	if _, err := j.bw.WriteString(sep); err != nil {
		return err
	}
	if _, err := j.bw.Write(doc); err != nil {
		return err
	}
	j.n++
	return nil
}

func (j *jsonArrayWriter) Flush() error { return j.bw.Flush() }

func (j *jsonArrayWriter) Close() error {
	tail := "]\n"
	switch {
	case j.n == 0:
		tail = "[]\n"
	case j.indent != "":
		tail = "\n]\n"
	}
	if _, err := j.bw.WriteString(tail); err != nil {
		return err
	}
	return j.bw.Flush()
}
