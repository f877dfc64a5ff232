// core/fasta/open.go
package fasta

import (
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// openReader opens path for reading. "-" means stdin. Gzip input is
// detected by the 1F 8B magic bytes or a .gz suffix.
func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &gzipReadCloser{gr: gr, fh: fh}, nil
	}
	return fh, nil
}

type gzipReadCloser struct {
	gr *gzip.Reader
	fh *os.File
}

func (g *gzipReadCloser) Read(p []byte) (int, error) { return g.gr.Read(p) }

func (g *gzipReadCloser) Close() error {
	gerr := g.gr.Close()
	ferr := g.fh.Close()
	if gerr != nil {
		return gerr
	}
	return ferr
}
