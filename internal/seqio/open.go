// internal/seqio/open.go
package seqio

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// Stdin names standard input on the command line.
const Stdin = "-"

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

// Open returns a reader for path. "-" is stdin. Gzip input is detected by
// magic number (1F 8B) or a .gz suffix, for files and stdin alike.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		br := bufio.NewReader(os.Stdin)
		if sig, _ := br.Peek(2); isGzip(sig) {
			gr, err := gzip.NewReader(br)
			if err != nil {
				return nil, err
			}
			return gr, nil
		}
		return io.NopCloser(br), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := io.ReadFull(fh, sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if isGzip(sig[:n]) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}

func isGzip(sig []byte) bool {
	return len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b
}
