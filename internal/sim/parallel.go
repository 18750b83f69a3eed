package sim

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Ensemble runs many random soups of the same size, one seed each.
type Ensemble struct {
	numRuns   int
	seedStart int64
	workers   int
}

func NewEnsemble(numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{numRuns: numRuns, seedStart: seedStart, workers: runtime.NumCPU()}
}

// SetWorkers caps the number of concurrent runs. Values below 1 mean one.
func (e *Ensemble) SetWorkers(n int) {
	e.workers = max(n, 1)
}

// Run executes every soup and returns results in seed order. The first error
// cancels the remaining runs.
func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	results := make([]*Result, e.numRuns)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(e.workers)
	for i := range e.numRuns {
		eg.Go(func() error {
			c := cfg
			c.Seed = e.seedStart + int64(i)

			g, err := Soup(c)
			if err != nil {
				return err
			}
			r, err := Run(ctx, g, c)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summary aggregates ensemble results.
type Summary struct {
	Runs         int
	Settled      int
	MeanLifetime float64
	MeanFinalPop float64
	LongestSeed  int64
	LongestLived int
	PeriodCounts map[int]int
}

func Summarize(results []*Result) Summary {
	s := Summary{Runs: len(results), PeriodCounts: make(map[int]int)}
	if len(results) == 0 {
		return s
	}
	var lifetime, pop float64
	for i, r := range results {
		lifetime += float64(r.Generations)
		pop += float64(r.Final.Population())
		if r.Settled {
			s.Settled++
			s.PeriodCounts[r.Period]++
		}
		if i == 0 || r.Generations > s.LongestLived {
			s.LongestLived, s.LongestSeed = r.Generations, r.Seed
		}
	}
	s.MeanLifetime = lifetime / float64(len(results))
	s.MeanFinalPop = pop / float64(len(results))
	return s
}
