// internal/pairs/loader.go
package pairs

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"swalign/core/align"
)

// LoadTSV reads a read-pair list: one "idA<ws>idB" per line, with '#'
// comments and blank lines skipped. Input order is preserved.
func LoadTSV(path string) ([]align.IDPair, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var list []align.IDPair
	sc := bufio.NewScanner(fh)
	// PacBio-style read IDs can exceed the default token size.
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) != 2 {
			return nil, fmt.Errorf("%s:%d bad field count (want 2, got %d)", path, ln, len(f))
		}
		list = append(list, align.IDPair{A: f[0], B: f[1]})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
