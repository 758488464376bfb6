package writers

import (
	"io"

	"fastj/pkg/fastj"
)

func init() {
	Register(FormatFASTJ, func(w io.Writer, _ Options) RecordWriter {
		return &fastjWriter{w: fastj.NewWriter(w)}
	})
}

type fastjWriter struct {
	w *fastj.Writer
}

func (f *fastjWriter) Write(r fastj.Record) error { return f.w.Write(r) }
func (f *fastjWriter) Flush() error               { return f.w.Flush() }
func (f *fastjWriter) Close() error               { return f.w.Flush() }
