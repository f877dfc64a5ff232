// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one parsed FASTA entry. ID is the first whitespace
// delimited token of the header line.
type Record struct {
	ID  string
	Seq string
}

// EachRecordCtx parses FASTA from r and calls emit once per record.
// Multi-line sequences are joined; blank lines are skipped. It is
// cancelable between lines, which matters for multi-gigabase inputs.
func EachRecordCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		id  string
		seq = make([]byte, 0, 1<<16)
		saw bool
	)
	flush := func() error {
		if !saw {
			return nil
		}
		return emit(Record{ID: id, Seq: string(seq)})
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id = headerID(line[1:])
			seq = seq[:0]
			saw = true
			continue
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// ReadAll maps read ID to sequence for every record in path. When a
// file repeats an ID the first record wins.
func ReadAll(path string) (map[string]string, error) {
	return ReadAllCtx(context.Background(), path)
}

// ReadAllCtx is ReadAll with cancellation.
func ReadAllCtx(ctx context.Context, path string) (map[string]string, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	dict := make(map[string]string)
	err = EachRecordCtx(ctx, rc, func(r Record) error {
		if _, dup := dict[r.ID]; !dup {
			dict[r.ID] = r.Seq
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dict, nil
}

func headerID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
