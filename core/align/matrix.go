// core/align/matrix.go
package align

// Scoring holds the similarity parameters for the matrix fill. They
// are parameters rather than constants so callers can substitute
// their own weights.
type Scoring struct {
	Match    int
	Mismatch int
	Gap      int
}

// DefaultScoring is the classic overlap-alignment parameterization.
var DefaultScoring = Scoring{Match: 2, Mismatch: -1, Gap: -1}

// Matrix is the (m+1)×(n+1) grid of best local-alignment scores.
// Row 0 and column 0 stay zero: a path may start anywhere without
// accumulating penalties for unaligned leading bases.
type Matrix [][]int

// Endpoint is the cell where the best-scoring alignment ends.
// X indexes seq1 (rows), Y indexes seq2 (columns), both 1-based.
type Endpoint struct {
	X, Y int
}

// Score returns the matrix value at ep.
func (m Matrix) Score(ep Endpoint) int { return m[ep.X][ep.Y] }

// BuildMatrix fills the score matrix for seq1 × seq2 in row-major
// order and tracks the first cell holding the global maximum: ties
// after the first occurrence do not move the endpoint. ok is false
// when no cell scores above zero, i.e. no alignment exists (either
// read empty, or nothing but penalties).
func BuildMatrix(seq1, seq2 string, sc Scoring) (Matrix, Endpoint, bool) {
	rows := len(seq1) + 1
	cols := len(seq2) + 1

	cells := make([]int, rows*cols)
	m := make(Matrix, rows)
	for i := range m {
		m[i] = cells[i*cols : (i+1)*cols]
	}

	best := 0
	var at Endpoint
	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			sim := sc.Mismatch
			if seq1[i-1] == seq2[j-1] {
				sim = sc.Match
			}
			score := m[i-1][j-1] + sim
			if up := m[i-1][j] + sc.Gap; up > score {
				score = up
			}
			if left := m[i][j-1] + sc.Gap; left > score {
				score = left
			}
			if score < 0 {
				score = 0
			}
			m[i][j] = score
			if score > best {
				best = score
				at = Endpoint{X: i, Y: j}
			}
		}
	}
	return m, at, best > 0
}
