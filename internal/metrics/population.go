package metrics

import "github.com/san-kum/lifesim/internal/life"

const DefaultHistory = 120

// Population tracks live-cell counts over the generations of a session.
type Population struct {
	capacity   int
	history    []float64
	current    int
	peak       int
	generation int
	density    float64
}

// NewPopulation keeps at most capacity samples. Storage grows with the
// samples actually observed.
func NewPopulation(capacity int) *Population {
	if capacity <= 0 {
		capacity = DefaultHistory
	}
	return &Population{
		capacity: capacity,
		history:  make([]float64, 0, min(capacity, DefaultHistory)),
	}
}

// Observe records g. A generation number lower than the last one seen means
// the board was reset, so history starts over.
func (p *Population) Observe(g life.Grid, generation int) {
	if generation < p.generation {
		p.Reset()
	}
	p.generation = generation
	p.current = g.Population()
	if p.current > p.peak {
		p.peak = p.current
	}
	if g.Len() > 0 {
		p.density = float64(p.current) / float64(g.Len())
	}
	p.history = append(p.history, float64(p.current))
	if len(p.history) > p.capacity {
		p.history = p.history[1:]
	}
}

func (p *Population) Value() float64     { return float64(p.current) }
func (p *Population) Peak() int          { return p.peak }
func (p *Population) Density() float64   { return p.density }
func (p *Population) Generation() int    { return p.generation }
func (p *Population) History() []float64 { return append([]float64(nil), p.history...) }

func (p *Population) Reset() {
	p.history = p.history[:0]
	p.current = 0
	p.peak = 0
	p.generation = 0
	p.density = 0
}
