// internal/source/open.go
package source

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader for path, or for stdin when path is "-".
// Gzip input is detected by magic number (1F 8B) or by .gz suffix.
// Closing the result never closes os.Stdin.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return wrap(os.Stdin, io.NopCloser(os.Stdin), false)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return wrap(fh, fh, strings.HasSuffix(path, ".gz"))
}

func wrap(r io.Reader, c io.Closer, forceGzip bool) (io.ReadCloser, error) {
	br := bufio.NewReaderSize(r, 64<<10)
	sig, _ := br.Peek(2)
	if forceGzip || (len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b) {
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = c.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, c}}, nil
	}
	return &multiReadCloser{Reader: br, closers: []io.Closer{c}}, nil
}

// Name is the label used for path in messages and summaries.
func Name(path string) string {
	if path == Stdin {
		return "<stdin>"
	}
	return path
}
