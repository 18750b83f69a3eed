package sim

import (
	"context"
	"math/rand/v2"

	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/metrics"
)

const maxRecentPrealloc = 64

// Soup returns a randomized board for cfg.Seed.
func Soup(cfg Config) (life.Grid, error) {
	if err := cfg.validate(); err != nil {
		return life.Grid{}, err
	}
	g, err := life.New(cfg.Width, cfg.Height)
	if err != nil {
		return life.Grid{}, err
	}
	return life.Randomize(g, rand.New(rand.NewPCG(uint64(cfg.Seed), 0))), nil
}

// Run steps g until it settles, cycles with a period up to cfg.MaxPeriod, or
// reaches cfg.MaxGenerations. The context is checked once per generation.
func Run(ctx context.Context, g life.Grid, cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	pop := metrics.NewPopulation(max(cfg.MaxGenerations, cfg.MaxGenerations+1))
	pop.Observe(g, 0)
	result := &Result{Seed: cfg.Seed, Initial: g.Population()}

	// recent holds the last MaxPeriod generations, newest last.
	recent := make([]life.Grid, 0, min(cfg.MaxPeriod, maxRecentPrealloc))
	for i := 0; i < cfg.MaxGenerations; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if cfg.MaxPeriod > 0 {
			if len(recent) == cfg.MaxPeriod {
				recent = append(recent[:0], recent[1:]...)
			}
			recent = append(recent, g)
		}

		next, changed := life.Step(g)
		if !changed {
			result.Settled, result.Period = true, 1
			break
		}
		result.Generations++
		pop.Observe(next, result.Generations)
		g = next

		if p := period(recent, next); p > 0 {
			result.Settled, result.Period = true, p
			break
		}
	}

	result.Final = g
	result.Peak = pop.Peak()
	result.Population = pop.History()
	return result, nil
}

// period returns how many generations back next appeared in recent, or 0.
// recent ends with the generation just before next.
func period(recent []life.Grid, next life.Grid) int {
	for i := len(recent) - 1; i >= 0; i-- {
		if recent[i].Equal(next) {
			return len(recent) - i
		}
	}
	return 0
}
