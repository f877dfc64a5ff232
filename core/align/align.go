// core/align/align.go
package align

import "errors"

var (
	// ErrNoAlignment reports that no positive-scoring local alignment
	// exists between the two reads.
	ErrNoAlignment = errors.New("align: no significant alignment")

	// ErrInternal flags a traceback state the recurrence cannot
	// produce. Seeing it means a defect in this package, not bad
	// input.
	ErrInternal = errors.New("align: internal inconsistency")
)

// Result is an aligned pair plus its score, the matrix maximum.
type Result struct {
	Alignment
	Score int
}

// Align runs the full build + traceback with DefaultScoring.
func Align(seq1, seq2 string) (Result, error) {
	return AlignWith(DefaultScoring, seq1, seq2)
}

// AlignWith is Align with explicit scoring parameters.
func AlignWith(sc Scoring, seq1, seq2 string) (Result, error) {
	m, ep, ok := BuildMatrix(seq1, seq2, sc)
	if !ok {
		return Result{}, ErrNoAlignment
	}
	a, err := Traceback(m, ep, seq1, seq2)
	if err != nil {
		return Result{}, err
	}
	return Result{Alignment: a, Score: m.Score(ep)}, nil
}
