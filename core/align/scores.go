// core/align/scores.go
package align

import "fmt"

// IDPair keys a batch score: two read identifiers. Order is
// preserved, (A, B) and (B, A) are distinct keys.
type IDPair struct {
	A, B string
}

// Lookup resolves a read identifier to its sequence.
type Lookup interface {
	Sequence(id string) (string, bool)
}

// LookupFunc adapts a function to the Lookup interface.
type LookupFunc func(id string) (string, bool)

func (f LookupFunc) Sequence(id string) (string, bool) { return f(id) }

// LookupError reports an identifier the collaborator could not
// resolve.
type LookupError struct {
	ID string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("align: unknown read %q", e.ID)
}

// ScorePairs computes the overlap-alignment score for each identifier
// pair with DefaultScoring. Only the matrix maximum is needed, so no
// traceback runs. The first unresolved identifier aborts the whole
// batch: a partial score map is never returned.
func ScorePairs(pairs []IDPair, lookup Lookup) (map[IDPair]int, error) {
	return ScorePairsWith(DefaultScoring, pairs, lookup)
}

// ScorePairsWith is ScorePairs with explicit scoring parameters.
func ScorePairsWith(sc Scoring, pairs []IDPair, lookup Lookup) (map[IDPair]int, error) {
	scores := make(map[IDPair]int, len(pairs))
	for _, p := range pairs {
		s, err := PairScore(sc, p, lookup)
		if err != nil {
			return nil, err
		}
		scores[p] = s
	}
	return scores, nil
}

// PairScore scores a single identifier pair. A pair with no positive
// alignment scores 0; that is a result, not an error.
func PairScore(sc Scoring, p IDPair, lookup Lookup) (int, error) {
	seq1, ok := lookup.Sequence(p.A)
	if !ok {
		return 0, &LookupError{ID: p.A}
	}
	seq2, ok := lookup.Sequence(p.B)
	if !ok {
		return 0, &LookupError{ID: p.B}
	}
	m, ep, ok := BuildMatrix(seq1, seq2, sc)
	if !ok {
		return 0, nil
	}
	return m.Score(ep), nil
}
