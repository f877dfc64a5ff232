// core/align/stats.go
package align

import "strings"

// Stats summarizes an alignment position by position.
type Stats struct {
	Marks      string // '|' identity, ' ' gap, ':' mismatch
	Identities int
	Gaps       int
	Mismatches int
}

// Length is the alignment length; Identities+Gaps+Mismatches always
// equals it.
func (s Stats) Length() int { return len(s.Marks) }

// Summarize builds the mark string printed between the two aligned
// reads and counts identities, gaps, and mismatches.
func Summarize(a Alignment) Stats {
	var st Stats
	var b strings.Builder
	b.Grow(len(a.Seq1))
	for i := 0; i < len(a.Seq1); i++ {
		c1, c2 := a.Seq1[i], a.Seq2[i]
		switch {
		case c1 == c2 && c1 != GapByte:
			b.WriteByte('|')
			st.Identities++
		case c1 == GapByte || c2 == GapByte:
			b.WriteByte(' ')
			st.Gaps++
		default:
			b.WriteByte(':')
			st.Mismatches++
		}
	}
	st.Marks = b.String()
	return st
}
