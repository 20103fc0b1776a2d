package tournament

import (
	"context"
	"fmt"
	rand "math/rand/v2"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-engine/internal/randutil"
)

// Factory builds the players for table i. rng is private to that table.
type Factory func(table int, rng *rand.Rand) ([]Strategy, error)

// SeriesResult aggregates independent tables played with the same players.
type SeriesResult struct {
	Tables []*Result
	Scores []float64 // per-player mean of the table scores
	Wins   []int     // tables won outright per player
}

// RunSeries plays one match per seed, at most parallel at a time (0 means
// no limit). Tables share no state; each gets its own Loop seeded from its
// seed. opts are applied to every table before the per-table seed.
func RunSeries(ctx context.Context, cfg Config, seeds []int64, factory Factory, parallel int, opts ...Option) (*SeriesResult, error) {
	if len(seeds) == 0 {
		return nil, fmt.Errorf("series needs at least one seed")
	}

	g, ctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}

	tables := make([]*Result, len(seeds))
	for i, seed := range seeds {
		g.Go(func() error {
			rng := randutil.New(seed)
			players, err := factory(i, randutil.New(seed^0x5eed))
			if err != nil {
				return fmt.Errorf("table %d: %w", i, err)
			}

			loop, err := New(cfg, append(slices.Clip(opts), WithRNG(rng))...)
			if err != nil {
				return err
			}
			res, err := loop.Run(ctx, players)
			if err != nil {
				return fmt.Errorf("table %d: %w", i, err)
			}
			tables[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	n := len(tables[0].Scores)
	out := &SeriesResult{
		Tables: tables,
		Scores: make([]float64, n),
		Wins:   make([]int, n),
	}
	for i, t := range tables {
		if len(t.Scores) != n {
			return nil, fmt.Errorf("table %d has %d players, table 0 has %d", i, len(t.Scores), n)
		}
		for p, s := range t.Scores {
			out.Scores[p] += s / float64(len(tables))
		}
		if t.Winner >= 0 {
			out.Wins[t.Winner]++
		}
	}
	return out, nil
}
