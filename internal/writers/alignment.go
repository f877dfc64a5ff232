// internal/writers/alignment.go
package writers

import (
	"fmt"
	"io"

	"swalign/core/align"
	"swalign/pkg/api"
)

// WriteAlignmentJSON emits one alignment in the stable v1 schema.
func WriteAlignmentJSON(w io.Writer, r align.Result) error {
	st := align.Summarize(r.Alignment)
	return encodePretty(w, api.AlignmentV1{
		Seq1:       r.Seq1,
		Seq2:       r.Seq2,
		Marks:      st.Marks,
		Score:      r.Score,
		Length:     st.Length(),
		Identities: st.Identities,
		Gaps:       st.Gaps,
		Mismatches: st.Mismatches,
	})
}

// WriteAlignmentTSV emits one summary row for a single alignment.
func WriteAlignmentTSV(w io.Writer, query, subject string, r align.Result, header bool) error {
	st := align.Summarize(r.Alignment)
	if header {
		if _, err := fmt.Fprintln(w, "query\tsubject\tscore\tlength\tidentities\tgaps\tmismatches"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
		query, subject, r.Score, st.Length(), st.Identities, st.Gaps, st.Mismatches)
	return err
}
