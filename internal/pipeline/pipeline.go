// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"swalign/core/align"
)

// Config controls the batch-scoring pipeline.
type Config struct {
	Threads int // worker goroutines (0 = all CPUs)
	Scoring align.Scoring
}

// PairScore is one scored read pair in input order.
type PairScore struct {
	Pair  align.IDPair
	Score int
}

// ScoreAll scores every pair concurrently and returns results in
// input order. The first lookup failure or cancellation stops the
// batch; no partial result slice is returned.
func ScoreAll(ctx context.Context, cfg Config, ps []align.IDPair, lookup align.Lookup) ([]PairScore, error) {
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	out := make([]PairScore, len(ps))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for i, p := range ps {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := align.PairScore(cfg.Scoring, p, lookup)
			if err != nil {
				return err
			}
			out[i] = PairScore{Pair: p, Score: s}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
