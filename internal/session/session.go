// Package session owns the live Game of Life board and routes commands,
// pointer input, viewport changes and frame ticks to the grid, the drawing
// controller and the scheduler.
//
// A State is driven by one host on one goroutine. Events must be delivered
// serially in arrival order; State is not safe for concurrent use.
package session

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/san-kum/lifesim/internal/anim"
	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/draw"
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/pattern"
)

// Observer is notified every time the session replaces its grid.
type Observer interface {
	Observe(g life.Grid, generation int)
}

type Options struct {
	Width      int
	Height     int
	Layout     draw.Layout
	FrameDelay time.Duration
	Seed       int64
	Mirror     bool
}

func FromConfig(cfg *config.Config) Options {
	return Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Layout:     draw.Layout{CellWidth: cfg.CellWidth, CellHeight: cfg.CellHeight},
		FrameDelay: cfg.FrameDelay(),
		Seed:       cfg.Seed,
		Mirror:     cfg.Mirror,
	}
}

type State struct {
	grid       life.Grid
	height     int
	generation int
	mirroring  bool
	scheduler  *anim.Scheduler
	controller *draw.Controller
	rng        *rand.Rand
	observers  []Observer
}

// New starts a session on an all-dead board.
func New(opts Options) (*State, error) {
	g, err := life.New(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	if opts.Layout.CellWidth < 1 || opts.Layout.CellHeight < 1 {
		return nil, fmt.Errorf("cell size %dx%d: %w", opts.Layout.CellWidth, opts.Layout.CellHeight, life.ErrInvalidDimension)
	}
	return &State{
		grid:       g,
		height:     opts.Height,
		mirroring:  opts.Mirror,
		scheduler:  anim.New(opts.FrameDelay),
		controller: draw.NewController(opts.Layout),
		rng:        rand.New(rand.NewPCG(uint64(opts.Seed), 0)),
	}, nil
}

func (s *State) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
	o.Observe(s.grid, s.generation)
}

func (s *State) Grid() life.Grid           { return s.grid }
func (s *State) Generation() int           { return s.generation }
func (s *State) Running() bool             { return s.scheduler.Running() }
func (s *State) Mirroring() bool           { return s.mirroring }
func (s *State) Drawing() bool             { return s.controller.Drawing() }
func (s *State) Phase() draw.Phase         { return s.controller.Phase() }
func (s *State) FrameDelay() time.Duration { return s.scheduler.FrameDelay() }
func (s *State) Layout() draw.Layout       { return s.controller.Layout() }

func (s *State) replace(g life.Grid) {
	s.grid = g
	for _, o := range s.observers {
		o.Observe(g, s.generation)
	}
}

// Clear empties the board, keeping its dimensions.
func (s *State) Clear() {
	g, _ := life.Clear(s.grid.Width(), s.grid.Height())
	s.generation = 0
	s.replace(g)
}

func (s *State) ToggleMirror() { s.mirroring = !s.mirroring }

// Step advances one generation regardless of the running flag. It reports
// whether the grid changed; an unchanged result leaves everything as is.
func (s *State) Step() bool {
	next, changed := life.Step(s.grid)
	if !changed {
		return false
	}
	s.generation++
	s.replace(next)
	return true
}

func (s *State) Randomize() {
	s.generation = 0
	s.replace(life.Randomize(s.grid, s.rng))
}

func (s *State) ToggleRunning() { s.scheduler.Toggle() }
func (s *State) Pause()         { s.scheduler.Pause() }

func (s *State) SetFrameDelay(d time.Duration) { s.scheduler.SetFrameDelay(d) }

// Tick forwards a host frame tick to the scheduler.
func (s *State) Tick(now time.Time) anim.Result {
	next, res := s.scheduler.Tick(now, s.grid)
	if res == anim.Advanced {
		s.generation++
		s.replace(next)
	}
	return res
}

// PointerDown starts a draw gesture at a surface pixel. Drawing and
// continuous running are mutually exclusive, so running stops first.
func (s *State) PointerDown(px, py int) bool {
	s.scheduler.Pause()
	g, painted := s.controller.Begin(s.grid, px, py, s.mirroring)
	if painted {
		s.replace(g)
	}
	return painted
}

// PointerMove paints under the pointer while a gesture is active.
func (s *State) PointerMove(px, py int) bool {
	g, painted := s.controller.Move(s.grid, px, py, s.mirroring)
	if painted {
		s.replace(g)
	}
	return painted
}

func (s *State) PointerUp()    { s.controller.End() }
func (s *State) PointerLeave() { s.controller.End() }

// ResizeViewport rebuilds the board for a surface of the given pixel size.
// Only the width follows the viewport; the height stays as configured. The
// board is always cleared. A viewport narrower than one cell is rejected and
// the current board is kept.
func (s *State) ResizeViewport(widthPx, heightPx int) error {
	cols := s.controller.Layout().ColumnsFor(widthPx)
	g, err := draw.Resize(cols, s.height)
	if err != nil {
		return fmt.Errorf("viewport %dx%d: %w", widthPx, heightPx, err)
	}
	s.generation = 0
	s.replace(g)
	return nil
}

// Load stamps p onto the board with its top-left corner at (row, col).
func (s *State) Load(p pattern.Pattern, row, col int) {
	s.replace(p.Stamp(s.grid, row, col))
}

// LoadCentered stamps p in the middle of the board.
func (s *State) LoadCentered(p pattern.Pattern) {
	s.replace(p.Centered(s.grid))
}
