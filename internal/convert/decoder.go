package convert

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"

	"fastj/pkg/api"
	"fastj/pkg/fastj"
)

// DocumentError reports input that could not be decoded as documents.
// Index is the 0-based position of the offending document.
type DocumentError struct {
	Index int
	Err   error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("document %d: %v", e.Index, e.Err)
}

func (e *DocumentError) Unwrap() error { return e.Err }

// Decoder reads api.RecordV1 documents. The layout is chosen from the first
// non-space byte: '[' means a JSON array, anything else NDJSON.
type Decoder struct {
	br  *bufio.Reader
	dec *json.Decoder

	started bool
	array   bool
	done    bool
	n       int

	rec fastj.Record
	err error
}

// NewDecoder reads documents from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{br: bufio.NewReaderSize(r, 64<<10)}
}

// Next decodes the next document.
func (d *Decoder) Next() bool {
	if d.done {
		return false
	}
	if !d.started {
		d.started = true
		if err := d.start(); err != nil {
			return d.fail(err)
		}
	}

	if d.array {
		if !d.dec.More() {
			tok, err := d.dec.Token()
			if err != nil {
				return d.fail(&DocumentError{Index: d.n, Err: fmt.Errorf("close JSON array: %w", err)})
			}
			if tok != json.Delim(']') {
				return d.fail(&DocumentError{Index: d.n, Err: fmt.Errorf("close JSON array: unexpected %v", tok)})
			}
			d.done = true
			return false
		}
	}

	var doc api.RecordV1
	if err := d.dec.Decode(&doc); err != nil {
		if !d.array && errors.Is(err, io.EOF) {
			d.done = true
			return false
		}
		return d.fail(&DocumentError{Index: d.n, Err: err})
	}
	d.n++
	d.rec = doc.Record()
	return true
}

func (d *Decoder) start() error {
	for {
		b, err := d.br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if b == ' ' || b == '\t' || b == '\r' || b == '\n' {
			continue
		}
		if err := d.br.UnreadByte(); err != nil {
			return err
		}
		d.array = b == '['
		break
	}
	d.dec = json.NewDecoder(d.br)
	d.dec.UseNumber()
	if d.array {
		if _, err := d.dec.Token(); err != nil {
			return &DocumentError{Index: 0, Err: fmt.Errorf("open JSON array: %w", err)}
		}
	}
	return nil
}

func (d *Decoder) fail(err error) bool {
	d.err = err
	d.done = true
	return false
}

// Record returns the record produced by the last successful Next.
func (d *Decoder) Record() fastj.Record { return d.rec }

// Err returns the error that stopped decoding, if any.
func (d *Decoder) Err() error { return d.err }

// Count reports how many documents were decoded so far.
func (d *Decoder) Count() int { return d.n }

// All ranges over the remaining records; an error is yielded last.
func (d *Decoder) All() iter.Seq2[fastj.Record, error] {
	return func(yield func(fastj.Record, error) bool) {
		for d.Next() {
			if !yield(d.rec, nil) {
				return
			}
		}
		if d.err != nil {
			yield(fastj.Record{}, d.err)
		}
	}
}
