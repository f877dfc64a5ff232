//go:build property
// +build property

package align

import (
	"errors"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestAlignmentProperties checks the invariants the DP recurrence
// guarantees for arbitrary short reads.
func TestAlignmentProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)
	seqGen := gen.RegexMatch(`^[ACGT]{1,40}$`)

	properties.Property("aligned reads have equal length", prop.ForAll(
		func(s1, s2 string) bool {
			res, err := Align(s1, s2)
			if err != nil {
				return errors.Is(err, ErrNoAlignment)
			}
			return len(res.Seq1) == len(res.Seq2)
		},
		seqGen, seqGen,
	))

	properties.Property("cells are non-negative and the score is the global max", prop.ForAll(
		func(s1, s2 string) bool {
			m, ep, ok := BuildMatrix(s1, s2, DefaultScoring)
			max := 0
			for _, row := range m {
				for _, v := range row {
					if v < 0 {
						return false
					}
					if v > max {
						max = v
					}
				}
			}
			if !ok {
				return max == 0
			}
			return m.Score(ep) == max
		},
		seqGen, seqGen,
	))

	properties.Property("stats partition the alignment length", prop.ForAll(
		func(s1, s2 string) bool {
			res, err := Align(s1, s2)
			if err != nil {
				return true
			}
			st := Summarize(res.Alignment)
			return st.Identities+st.Gaps+st.Mismatches == st.Length() &&
				st.Length() == len(res.Seq1)
		},
		seqGen, seqGen,
	))

	properties.Property("self-alignment is gapless and scores 2·len", prop.ForAll(
		func(s string) bool {
			res, err := Align(s, s)
			if err != nil {
				return false
			}
			return res.Seq1 == s && res.Seq2 == s &&
				res.Score == 2*len(s) &&
				!strings.ContainsRune(res.Seq1, rune(GapByte))
		},
		seqGen,
	))

	properties.TestingRun(t)
}
