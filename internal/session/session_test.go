package session_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lifesim/internal/anim"
	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/draw"
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/metrics"
	"github.com/san-kum/lifesim/internal/pattern"
	"github.com/san-kum/lifesim/internal/session"
)

// cellPx returns the centre pixel of (row, col) for 10x10 cells.
func cellPx(row, col int) (int, int) { return col*10 + 5, row*10 + 5 }

var _ = Describe("State", func() {
	var (
		s   *session.State
		now time.Time
	)

	BeforeEach(func() {
		var err error
		s, err = session.New(session.Options{
			Width:  5,
			Height: 5,
			Layout: draw.Layout{CellWidth: 10, CellHeight: 10},
			Seed:   42,
		})
		Expect(err).NotTo(HaveOccurred())
		now = time.Unix(1000, 0)
	})

	loadBlinker := func() {
		p, err := pattern.Get("blinker")
		Expect(err).NotTo(HaveOccurred())
		s.Load(p, 2, 1)
	}

	It("starts stopped on an empty board", func() {
		Expect(s.Running()).To(BeFalse())
		Expect(s.Mirroring()).To(BeFalse())
		Expect(s.Drawing()).To(BeFalse())
		Expect(s.Grid().Population()).To(BeZero())
		Expect(s.Grid().Width()).To(Equal(5))
	})

	It("rejects non-positive dimensions", func() {
		_, err := session.New(session.Options{Width: 0, Height: 5, Layout: draw.Layout{CellWidth: 1, CellHeight: 1}})
		Expect(err).To(MatchError(life.ErrInvalidDimension))
	})

	It("builds from config", func() {
		cfg := config.GetPreset("kaleidoscope")
		st, err := session.New(session.FromConfig(cfg))
		Expect(err).NotTo(HaveOccurred())
		Expect(st.Mirroring()).To(BeTrue())
		Expect(st.FrameDelay()).To(Equal(60 * time.Millisecond))
		Expect(st.Grid().Width()).To(Equal(81))
	})

	Describe("continuous running", func() {
		It("ignores ticks while stopped", func() {
			loadBlinker()
			before := s.Grid()
			Expect(s.Tick(now)).To(Equal(anim.Idle))
			Expect(s.Grid().Equal(before)).To(BeTrue())
			Expect(s.Generation()).To(BeZero())
		})

		It("keeps a blinker running and reproduces it every two advances", func() {
			loadBlinker()
			start := s.Grid()
			s.SetFrameDelay(0)
			s.ToggleRunning()

			for i := 0; i < 4; i++ {
				Expect(s.Tick(now.Add(time.Duration(i) * time.Millisecond))).To(Equal(anim.Advanced))
				Expect(s.Running()).To(BeTrue())
			}
			Expect(s.Grid().Equal(start)).To(BeTrue())
			Expect(s.Generation()).To(Equal(4))
		})

		It("stops by itself once the board is empty", func() {
			s.ToggleRunning()
			Expect(s.Tick(now)).To(Equal(anim.Settled))
			Expect(s.Running()).To(BeFalse())
		})

		It("pauses on toggle", func() {
			s.ToggleRunning()
			s.ToggleRunning()
			Expect(s.Running()).To(BeFalse())
		})
	})

	Describe("manual step", func() {
		It("advances regardless of the running flag", func() {
			loadBlinker()
			Expect(s.Step()).To(BeTrue())
			Expect(s.Grid().Alive(1, 2)).To(BeTrue())
			Expect(s.Grid().Alive(2, 1)).To(BeFalse())
		})

		It("leaves a settled board alone without touching running", func() {
			before := s.Grid()
			Expect(s.Step()).To(BeFalse())
			Expect(s.Grid().Equal(before)).To(BeTrue())
			Expect(s.Running()).To(BeFalse())
			Expect(s.Generation()).To(BeZero())
		})
	})

	Describe("drawing", func() {
		It("stops running when a gesture begins", func() {
			loadBlinker()
			s.ToggleRunning()
			x, y := cellPx(0, 0)
			Expect(s.PointerDown(x, y)).To(BeTrue())
			Expect(s.Running()).To(BeFalse())
			Expect(s.Drawing()).To(BeTrue())
			Expect(s.Tick(now)).To(Equal(anim.Idle))
		})

		It("paints on move only while the pointer is down", func() {
			x, y := cellPx(1, 1)
			Expect(s.PointerMove(x, y)).To(BeFalse())
			Expect(s.Grid().Population()).To(BeZero())

			s.PointerDown(cellPx(0, 0))
			Expect(s.PointerMove(x, y)).To(BeTrue())
			Expect(s.PointerMove(x, y)).To(BeFalse())
			Expect(s.PointerMove(-3, y)).To(BeFalse())
			Expect(s.PointerMove(x, 900)).To(BeFalse())
			s.PointerUp()

			Expect(s.PointerMove(cellPx(3, 3))).To(BeFalse())
			Expect(s.Grid().Population()).To(Equal(2))
		})

		It("ends the gesture when the pointer leaves", func() {
			s.PointerDown(cellPx(0, 0))
			Expect(s.Phase()).To(Equal(draw.Drawing))
			s.PointerLeave()
			Expect(s.Drawing()).To(BeFalse())
			Expect(s.Phase()).To(Equal(draw.Idle))
		})

		It("paints four symmetric cells when mirroring", func() {
			s.ToggleMirror()
			s.PointerDown(cellPx(0, 1))
			g := s.Grid()
			Expect(g.Population()).To(Equal(4))
			for _, c := range []life.Coord{{Row: 0, Col: 1}, {Row: 0, Col: 3}, {Row: 4, Col: 1}, {Row: 4, Col: 3}} {
				Expect(g.Alive(c.Row, c.Col)).To(BeTrue(), "cell %v", c)
			}
		})
	})

	Describe("viewport resize", func() {
		It("clears the board and follows the viewport width", func() {
			loadBlinker()
			Expect(s.ResizeViewport(125, 999)).To(Succeed())
			Expect(s.Grid().Width()).To(Equal(12))
			Expect(s.Grid().Height()).To(Equal(5))
			Expect(s.Grid().Population()).To(BeZero())
		})

		It("rejects a viewport narrower than one cell and keeps the board", func() {
			loadBlinker()
			before := s.Grid()
			Expect(s.ResizeViewport(9, 100)).To(MatchError(life.ErrInvalidDimension))
			Expect(s.Grid().Equal(before)).To(BeTrue())
		})
	})

	Describe("board commands", func() {
		It("clears to an empty board of the same size", func() {
			loadBlinker()
			s.Step()
			s.Clear()
			Expect(s.Grid().Population()).To(BeZero())
			Expect(s.Generation()).To(BeZero())
		})

		It("randomizes deterministically for a seed", func() {
			s.Randomize()
			first := s.Grid()

			other, err := session.New(session.Options{Width: 5, Height: 5, Layout: draw.Layout{CellWidth: 10, CellHeight: 10}, Seed: 42})
			Expect(err).NotTo(HaveOccurred())
			other.Randomize()
			Expect(other.Grid().Equal(first)).To(BeTrue())
		})

		It("toggles mirroring", func() {
			s.ToggleMirror()
			Expect(s.Mirroring()).To(BeTrue())
			s.ToggleMirror()
			Expect(s.Mirroring()).To(BeFalse())
		})
	})

	Describe("observers", func() {
		It("see every replaced grid", func() {
			pop := metrics.NewPopulation(10)
			s.AddObserver(pop)
			loadBlinker()
			Expect(pop.Value()).To(Equal(3.0))

			s.Step()
			Expect(pop.Generation()).To(Equal(1))

			s.Clear()
			Expect(pop.Value()).To(BeZero())
			Expect(pop.Generation()).To(BeZero())
		})
	})
})
