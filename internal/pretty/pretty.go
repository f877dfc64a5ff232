// internal/pretty/pretty.go
package pretty

import (
	"fmt"
	"strings"

	"swalign/core/align"
)

// lineWidth is the classic BLAST-report wrap width.
const lineWidth = 60

// RenderAlignment formats the block view of an alignment: a summary
// line, then 60-column Query/Sbjct slices with 1-based alignment
// position counters and the mark row between them.
func RenderAlignment(r align.Result) string {
	st := align.Summarize(r.Alignment)
	n := st.Length()
	if n == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, " Score = %d, Identities = %d/%d (%.1f%%), Gaps = %d/%d (%.1f%%), Mismatches = %d\n\n",
		r.Score,
		st.Identities, n, pct(st.Identities, n),
		st.Gaps, n, pct(st.Gaps, n),
		st.Mismatches)

	for i := 0; i < n; i += lineWidth {
		endCol := i + lineWidth
		if endCol > n {
			endCol = n
		}
		q := r.Seq1[i:endCol]
		s := r.Seq2[i:endCol]
		fmt.Fprintf(&b, "Query  %-4d  %s  %-4d\n", i+1, q, i+len(q))
		fmt.Fprintf(&b, "             %s\n", st.Marks[i:endCol])
		fmt.Fprintf(&b, "Sbjct  %-4d  %s  %-4d\n\n", i+1, s, i+len(s))
	}
	return b.String()
}

func pct(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return 100 * float64(part) / float64(whole)
}
