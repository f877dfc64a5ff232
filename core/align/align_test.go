// core/align/align_test.go
package align

import (
	"errors"
	"testing"
)

func TestAlignNoAlignment(t *testing.T) {
	tests := []struct {
		name       string
		seq1, seq2 string
	}{
		{"first empty", "", "x"},
		{"second empty", "x", ""},
		{"both empty", "", ""},
		{"all mismatch", "AAAA", "TTTT"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Align(tc.seq1, tc.seq2)
			if !errors.Is(err, ErrNoAlignment) {
				t.Fatalf("Align(%q, %q) err = %v, want ErrNoAlignment", tc.seq1, tc.seq2, err)
			}
		})
	}
}

// Unrecognized symbols are ordinary mismatches, never rejected.
func TestAlignOpaqueAlphabet(t *testing.T) {
	res, err := Align("xyzACGT", "ACGT")
	if err != nil {
		t.Fatalf("Align: %v", err)
	}
	if res.Seq1 != "ACGT" || res.Seq2 != "ACGT" {
		t.Errorf("aligned = (%q, %q), want (ACGT, ACGT)", res.Seq1, res.Seq2)
	}
	if res.Score != 8 {
		t.Errorf("score = %d, want 8", res.Score)
	}
}

func TestAlignWithScoring(t *testing.T) {
	sc := Scoring{Match: 1, Mismatch: -1, Gap: -1}
	res, err := AlignWith(sc, "ACGT", "ACGT")
	if err != nil {
		t.Fatalf("AlignWith: %v", err)
	}
	if res.Score != 4 {
		t.Errorf("score = %d, want 4", res.Score)
	}
}
