// core/align/traceback.go
package align

import "fmt"

// GapByte is the placeholder written opposite a real base.
const GapByte = '-'

type move uint8

const (
	end move = iota
	diag
	up
	left
)

// nextMove picks the step out of cell (x, y) from the three neighbors
// the recurrence could have used. Ties go to diag, then up. A zero
// winner means the path is complete.
func nextMove(m Matrix, x, y int) (move, error) {
	d := m[x-1][y-1]
	u := m[x-1][y]
	l := m[x][y-1]
	switch {
	case d >= u && d >= l:
		if d == 0 {
			return end, nil
		}
		return diag, nil
	case u > d && u >= l:
		if u == 0 {
			return end, nil
		}
		return up, nil
	case l > d && l > u:
		if l == 0 {
			return end, nil
		}
		return left, nil
	}
	// Unreachable for any matrix produced by BuildMatrix.
	return end, fmt.Errorf("%w: no move out of (%d,%d): diag=%d up=%d left=%d",
		ErrInternal, x, y, d, u, l)
}

// Alignment is a gapped, equal-length rendering of the two reads.
type Alignment struct {
	Seq1 string
	Seq2 string
}

// Traceback walks the matrix from ep back toward a zero cell and
// reconstructs the aligned pair. The matrix is read-only here.
//
// When the walk stops, the zero cell still aligns one real base pair,
// but only while neither index has reached the boundary; stopping on
// row 0 or column 0 appends nothing.
func Traceback(m Matrix, ep Endpoint, seq1, seq2 string) (Alignment, error) {
	a1 := make([]byte, 0, ep.X+ep.Y)
	a2 := make([]byte, 0, ep.X+ep.Y)
	x, y := ep.X, ep.Y

walk:
	for x > 0 && y > 0 {
		mv, err := nextMove(m, x, y)
		if err != nil {
			return Alignment{}, err
		}
		switch mv {
		case end:
			a1 = append(a1, seq1[x-1])
			a2 = append(a2, seq2[y-1])
			break walk
		case diag:
			a1 = append(a1, seq1[x-1])
			a2 = append(a2, seq2[y-1])
			x--
			y--
		case up:
			a1 = append(a1, seq1[x-1])
			a2 = append(a2, GapByte)
			x--
		case left:
			a1 = append(a1, GapByte)
			a2 = append(a2, seq2[y-1])
			y--
		}
	}

	reverse(a1)
	reverse(a2)
	return Alignment{Seq1: string(a1), Seq2: string(a2)}, nil
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
