package fastj

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
	"unicode"
)

// LineSource yields one line at a time, terminator included.
// End of input is reported as ("", io.EOF); a final unterminated line is
// returned with a nil error and the next call reports io.EOF.
type LineSource interface {
	ReadLine() (string, error)
}

type lineReader struct {
	br *bufio.Reader
}

// NewLineSource adapts r to a LineSource. Lines are not length-limited, so a
// whole chromosome on one line is fine.
func NewLineSource(r io.Reader) LineSource {
	if br, ok := r.(*bufio.Reader); ok {
		return &lineReader{br: br}
	}
	return &lineReader{br: bufio.NewReaderSize(r, 64<<10)}
}

func (l *lineReader) ReadLine() (string, error) {
	line, err := l.br.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	return line, err
}

var seqCleaner = strings.NewReplacer(" ", "", "\r", "")

// Tokenizer splits FASTA-shaped text into RawPairs on demand.
//
// Text before the first '>' line is skipped. The tokenizer only reads from
// its source; closing it is the caller's job.
type Tokenizer struct {
	src LineSource

	line    string // current title line
	started bool
	eof     bool
	done    bool

	pair RawPair
	err  error
}

// NewTokenizer returns a Tokenizer reading from src.
func NewTokenizer(src LineSource) *Tokenizer {
	return &Tokenizer{src: src}
}

// Next advances to the next pair. It returns false at end of input or on error.
func (t *Tokenizer) Next() bool {
	if t.done {
		return false
	}
	if t.eof {
		t.done = true
		return false
	}
	if !t.started {
		t.started = true
		for {
			line, err := t.read()
			if err != nil {
				return t.fail(err)
			}
			if line == "" {
				t.done = true
				return false
			}
			if line[0] == '>' {
				t.line = line
				break
			}
		}
	}

	if !strings.HasPrefix(t.line, ">") {
		return t.fail(&MalformedInputError{Line: t.line})
	}
	title := strings.TrimRightFunc(t.line[1:], unicode.IsSpace)

	var b strings.Builder
	for {
		line, err := t.read()
		if err != nil {
			return t.fail(err)
		}
		if line == "" {
			t.eof = true
			break
		}
		if line[0] == '>' {
			t.line = line
			break
		}
		b.WriteString(strings.TrimRightFunc(line, unicode.IsSpace))
	}

	t.pair = RawPair{Title: title, Sequence: seqCleaner.Replace(b.String())}
	return true
}

// Pair returns the pair produced by the last successful Next.
func (t *Tokenizer) Pair() RawPair { return t.pair }

// Err returns the first error that stopped the tokenizer, if any.
func (t *Tokenizer) Err() error { return t.err }

// All ranges over the remaining pairs. A failure is yielded once as the
// final element.
func (t *Tokenizer) All() iter.Seq2[RawPair, error] {
	return func(yield func(RawPair, error) bool) {
		for t.Next() {
			if !yield(t.pair, nil) {
				return
			}
		}
		if t.err != nil {
			yield(RawPair{}, t.err)
		}
	}
}

// read returns "" at end of input.
func (t *Tokenizer) read() (string, error) {
	line, err := t.src.ReadLine()
	if errors.Is(err, io.EOF) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("fastj: read: %w", err)
	}
	return line, nil
}

func (t *Tokenizer) fail(err error) bool {
	t.err = err
	t.done = true
	return false
}
