// core/align/matrix_test.go
package align

import (
	"reflect"
	"testing"
)

// Fixed reference fill for the classic Wikipedia example.
func TestBuildMatrixReference(t *testing.T) {
	seq1 := "AGCACACA"
	seq2 := "ACACACTA"

	//                 -  A  C  A  C  A  C  T  A
	want := Matrix{
		{0, 0, 0, 0, 0, 0, 0, 0, 0},  // -
		{0, 2, 1, 2, 1, 2, 1, 0, 2},  // A
		{0, 1, 1, 1, 1, 1, 1, 0, 1},  // G
		{0, 0, 3, 2, 3, 2, 3, 2, 1},  // C
		{0, 2, 2, 5, 4, 5, 4, 3, 4},  // A
		{0, 1, 4, 4, 7, 6, 7, 6, 5},  // C
		{0, 2, 3, 6, 6, 9, 8, 7, 8},  // A
		{0, 1, 4, 5, 8, 8, 11, 10, 9}, // C
		{0, 2, 3, 6, 7, 10, 10, 10, 12}, // A
	}

	m, ep, ok := BuildMatrix(seq1, seq2, DefaultScoring)
	if !ok {
		t.Fatal("expected a positive-scoring endpoint")
	}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("matrix mismatch:\ngot  %v\nwant %v", m, want)
	}
	if ep != (Endpoint{X: 8, Y: 8}) {
		t.Errorf("endpoint = %+v, want {8 8}", ep)
	}
	if got := m.Score(ep); got != 12 {
		t.Errorf("endpoint score = %d, want 12", got)
	}
}

// The endpoint must be the first row-major cell holding the maximum;
// later ties do not move it. "AA" × "A" scores 2 at both (1,1) and
// (2,1).
func TestEndpointTieBreak(t *testing.T) {
	m, ep, ok := BuildMatrix("AA", "A", DefaultScoring)
	if !ok {
		t.Fatal("expected an endpoint")
	}
	if m[1][1] != 2 || m[2][1] != 2 {
		t.Fatalf("test premise broken: m[1][1]=%d m[2][1]=%d, want both 2", m[1][1], m[2][1])
	}
	if ep != (Endpoint{X: 1, Y: 1}) {
		t.Errorf("endpoint = %+v, want first occurrence {1 1}", ep)
	}
}

func TestBuildMatrixDegenerate(t *testing.T) {
	tests := []struct {
		name       string
		seq1, seq2 string
	}{
		{"both empty", "", ""},
		{"first empty", "", "x"},
		{"second empty", "x", ""},
		{"all mismatch", "AAA", "TTT"},
	}
	for _, tc := range tests {
		m, _, ok := BuildMatrix(tc.seq1, tc.seq2, DefaultScoring)
		if ok {
			t.Errorf("%s: expected no endpoint", tc.name)
		}
		if len(m) != len(tc.seq1)+1 || len(m[0]) != len(tc.seq2)+1 {
			t.Errorf("%s: matrix is %dx%d, want %dx%d",
				tc.name, len(m), len(m[0]), len(tc.seq1)+1, len(tc.seq2)+1)
		}
	}
}

func TestCellsNonNegativeAndScoreIsMax(t *testing.T) {
	pairsToCheck := [][2]string{
		{"AGCACACA", "ACACACTA"},
		{"TAG", "GAG"},
		{"AAT", "AT"},
		{"ATAGACGACATACAGACAGCATACAGACAGCATACAGA", "TTTAGCATGCGCATATCAGCAATACAGACAGATACG"},
		{"GGGG", "GGCC"},
	}
	for _, pc := range pairsToCheck {
		m, ep, ok := BuildMatrix(pc[0], pc[1], DefaultScoring)
		max := 0
		for i, row := range m {
			for j, v := range row {
				if v < 0 {
					t.Fatalf("%s×%s: negative cell (%d,%d)=%d", pc[0], pc[1], i, j, v)
				}
				if v > max {
					max = v
				}
			}
		}
		if !ok {
			t.Fatalf("%s×%s: expected an endpoint", pc[0], pc[1])
		}
		if m.Score(ep) != max {
			t.Errorf("%s×%s: endpoint score %d != global max %d", pc[0], pc[1], m.Score(ep), max)
		}
	}
}

// Scoring parameters are substitutable, not baked in.
func TestCustomScoring(t *testing.T) {
	sc := Scoring{Match: 5, Mismatch: -4, Gap: -2}
	m, ep, ok := BuildMatrix("ACGT", "ACGT", sc)
	if !ok {
		t.Fatal("expected an endpoint")
	}
	if got := m.Score(ep); got != 20 {
		t.Errorf("identity score with match=5: got %d, want 20", got)
	}
}
