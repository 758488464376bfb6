package fastj

import (
	"bufio"
	"io"
	"iter"
)

// Reader yields Records from FASTJ text. It stops at the first tokenizer or
// metadata error and never returns a partial Record.
//
//	r := fastj.NewReader(f)
//	for r.Next() {
//		rec := r.Record()
//		...
//	}
//	if err := r.Err(); err != nil { ... }
type Reader struct {
	tok *Tokenizer
	rec Record
	err error
}

// NewReader reads FASTJ from r.
func NewReader(r io.Reader) *Reader {
	return NewReaderFromSource(NewLineSource(r))
}

// NewReaderFromSource reads FASTJ from an existing line source.
func NewReaderFromSource(src LineSource) *Reader {
	return &Reader{tok: NewTokenizer(src)}
}

// Next parses the next record.
func (r *Reader) Next() bool {
	if r.err != nil {
		return false
	}
	if !r.tok.Next() {
		r.err = r.tok.Err()
		return false
	}
	rec, err := ParsePair(r.tok.Pair())
	if err != nil {
		r.err = err
		return false
	}
	r.rec = rec
	return true
}

// Record returns the record produced by the last successful Next.
func (r *Reader) Record() Record { return r.rec }

// Err returns the error that ended iteration, or nil at a clean end of input.
func (r *Reader) Err() error { return r.err }

// All ranges over the remaining records; an error is yielded last.
func (r *Reader) All() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		for r.Next() {
			if !yield(r.rec, nil) {
				return
			}
		}
		if r.err != nil {
			yield(Record{}, r.err)
		}
	}
}

// ReadAll collects every record from r. Prefer Reader for large inputs.
func ReadAll(r io.Reader) ([]Record, error) {
	fr := NewReader(r)
	var out []Record
	for fr.Next() {
		out = append(out, fr.Record())
	}
	return out, fr.Err()
}

// Writer writes canonical FASTJ records, one per Write, each newline-terminated.
type Writer struct {
	bw *bufio.Writer
}

// NewWriter buffers output to w. Call Flush when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// Write formats rec and writes it. Nothing is written when formatting fails.
func (w *Writer) Write(rec Record) error {
	text, err := Format(rec)
	if err != nil {
		return err
	}
	if _, err := w.bw.WriteString(text); err != nil {
		return err
	}
	return w.bw.WriteByte('\n')
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error { return w.bw.Flush() }
