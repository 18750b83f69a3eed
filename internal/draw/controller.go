package draw

import "github.com/san-kum/lifesim/internal/life"

// Layout is the pixel geometry of one cell on the drawing surface.
type Layout struct {
	CellWidth  int
	CellHeight int
}

// CellAt maps a surface pixel to a (row, col). Negative pixels map to negative
// cells so they stay out of bounds instead of collapsing onto row or column 0.
func (l Layout) CellAt(px, py int) (row, col int) {
	return floorDiv(py, l.CellHeight), floorDiv(px, l.CellWidth)
}

// ColumnsFor returns how many whole cells fit in availablePx.
func (l Layout) ColumnsFor(availablePx int) int {
	return floorDiv(availablePx, l.CellWidth)
}

func floorDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// Phase is the state of a draw gesture.
type Phase int

const (
	Idle Phase = iota
	Drawing
)

func (p Phase) String() string {
	if p == Drawing {
		return "drawing"
	}
	return "idle"
}

// Controller gates pointer-move painting on an active gesture.
type Controller struct {
	layout Layout
	phase  Phase
}

func NewController(layout Layout) *Controller {
	return &Controller{layout: layout}
}

func (c *Controller) Layout() Layout { return c.layout }
func (c *Controller) Phase() Phase   { return c.phase }
func (c *Controller) Drawing() bool  { return c.phase == Drawing }

// Begin starts a gesture and paints the cell under the pointer.
func (c *Controller) Begin(g life.Grid, px, py int, mirror bool) (life.Grid, bool) {
	c.phase = Drawing
	return c.paint(g, px, py, mirror)
}

// Move paints the cell under the pointer while a gesture is active.
func (c *Controller) Move(g life.Grid, px, py int, mirror bool) (life.Grid, bool) {
	if c.phase != Drawing {
		return g, false
	}
	return c.paint(g, px, py, mirror)
}

// End finishes the current gesture.
func (c *Controller) End() { c.phase = Idle }

func (c *Controller) paint(g life.Grid, px, py int, mirror bool) (life.Grid, bool) {
	row, col := c.layout.CellAt(px, py)
	if _, ok := g.IndexOf(row, col); !ok || g.Alive(row, col) {
		return g, false
	}
	if mirror {
		return PaintCellMirrored(g, row, col), true
	}
	return PaintCell(g, row, col), true
}
