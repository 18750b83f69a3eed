package sim

import (
	"fmt"

	"github.com/san-kum/lifesim/internal/life"
)

// Config bounds a single headless run.
type Config struct {
	Width          int
	Height         int
	MaxGenerations int
	// MaxPeriod is the longest oscillator period detected. Zero disables
	// cycle detection beyond still lifes.
	MaxPeriod int
	Seed      int64
}

type Result struct {
	Seed        int64
	Generations int
	// Settled is set when the board stopped changing or entered a cycle.
	Settled    bool
	Period     int
	Initial    int
	Peak       int
	Final      life.Grid
	Population []float64
}

func (c Config) validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("sim: board %dx%d: %w", c.Width, c.Height, life.ErrInvalidDimension)
	}
	if c.MaxGenerations < 0 {
		return fmt.Errorf("sim: max generations must be non-negative, got %d", c.MaxGenerations)
	}
	if c.MaxPeriod < 0 {
		return fmt.Errorf("sim: max period must be non-negative, got %d", c.MaxPeriod)
	}
	return nil
}
