// Package anim advances a grid at a bounded rate from a host-provided tick.
package anim

import (
	"time"

	"github.com/san-kum/lifesim/internal/life"
)

// Result describes what a tick did.
type Result int

const (
	// Idle means the scheduler was stopped and the tick was ignored.
	Idle Result = iota
	// Throttled means less than the frame delay has elapsed since the last advance.
	Throttled
	// Advanced means a new generation was adopted.
	Advanced
	// Settled means the population stopped changing and running was switched off.
	Settled
)

func (r Result) String() string {
	switch r {
	case Throttled:
		return "throttled"
	case Advanced:
		return "advanced"
	case Settled:
		return "settled"
	default:
		return "idle"
	}
}

// Scheduler throttles generation advances independently of the tick rate.
// It is not safe for concurrent use; hosts deliver ticks serially.
type Scheduler struct {
	running     bool
	frameDelay  time.Duration
	lastAdvance time.Time
}

// New returns a stopped scheduler with the given minimum delay between advances.
func New(frameDelay time.Duration) *Scheduler {
	s := &Scheduler{}
	s.SetFrameDelay(frameDelay)
	return s
}

func (s *Scheduler) Running() bool             { return s.running }
func (s *Scheduler) FrameDelay() time.Duration { return s.frameDelay }
func (s *Scheduler) Start()                    { s.running = true }
func (s *Scheduler) Pause()                    { s.running = false }
func (s *Scheduler) Toggle()                   { s.running = !s.running }

// SetFrameDelay changes the throttle. It may be called while running. Zero
// advances on every tick; negative values are treated as zero.
func (s *Scheduler) SetFrameDelay(d time.Duration) {
	if d < 0 {
		d = 0
	}
	s.frameDelay = d
}

// Tick advances g by one generation when running and the frame delay has
// elapsed. A settled population stops the scheduler.
func (s *Scheduler) Tick(now time.Time, g life.Grid) (life.Grid, Result) {
	if !s.running {
		return g, Idle
	}
	if !s.lastAdvance.IsZero() && now.Sub(s.lastAdvance) < s.frameDelay {
		return g, Throttled
	}
	next, changed := life.Step(g)
	if !changed {
		s.running = false
		return g, Settled
	}
	s.lastAdvance = now
	return next, Advanced
}
