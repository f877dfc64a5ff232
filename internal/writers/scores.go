// internal/writers/scores.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"swalign/internal/pipeline"
	"swalign/pkg/api"
)

// WriteScoresTSV emits one "read_a read_b score" row per pair.
func WriteScoresTSV(w io.Writer, scores []pipeline.PairScore, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, "read_a\tread_b\tscore"); err != nil {
			return err
		}
	}
	for _, s := range scores {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\n", s.Pair.A, s.Pair.B, s.Score); err != nil {
			return err
		}
	}
	return nil
}

// WriteScoresJSON emits the stable v1 schema as indented JSON.
func WriteScoresJSON(w io.Writer, scores []pipeline.PairScore) error {
	out := make([]api.PairScoreV1, len(scores))
	for i, s := range scores {
		out[i] = api.PairScoreV1{ReadA: s.Pair.A, ReadB: s.Pair.B, Score: s.Score}
	}
	return encodePretty(w, out)
}

func encodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
