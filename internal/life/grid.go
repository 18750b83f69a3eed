package life

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// Coord is a (row, column) position on a grid.
type Coord struct {
	Row, Col int
}

// Grid is one generation of the board. The zero value is not usable; create
// grids with New.
type Grid struct {
	width, height int
	cells         []uint8
}

// New returns an all-dead grid with the given dimensions.
func New(width, height int) (Grid, error) {
	if width < 1 || height < 1 {
		return Grid{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	return Grid{width: width, height: height, cells: make([]uint8, width*height)}, nil
}

// Clear is equivalent to New.
func Clear(width, height int) (Grid, error) { return New(width, height) }

func (g Grid) Width() int  { return g.width }
func (g Grid) Height() int { return g.height }
func (g Grid) Len() int    { return len(g.cells) }

// Cells returns a copy of the flat cell sequence, indexed row*width+column.
func (g Grid) Cells() []uint8 {
	out := make([]uint8, len(g.cells))
	copy(out, g.cells)
	return out
}

// IndexOf returns the flat index of (row, col), or false when the coordinate
// lies outside the grid.
func (g Grid) IndexOf(row, col int) (int, bool) {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return 0, false
	}
	return row*g.width + col, true
}

// Alive reports whether (row, col) holds a live cell. Out of bounds is dead.
func (g Grid) Alive(row, col int) bool {
	i, ok := g.IndexOf(row, col)
	return ok && g.cells[i] == Alive
}

// CountLiveNeighbors sums the Moore neighbourhood of (row, col).
func (g Grid) CountLiveNeighbors(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if i, ok := g.IndexOf(row+dr, col+dc); ok {
				count += int(g.cells[i])
			}
		}
	}
	return count
}

// Population returns the number of live cells.
func (g Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		n += int(c)
	}
	return n
}

// Equal reports whether both grids have the same dimensions and cells.
func (g Grid) Equal(o Grid) bool {
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// With returns a copy of g with the given coordinates set alive. Coordinates
// outside the grid are skipped. When no cell changes, g itself is returned.
func (g Grid) With(coords ...Coord) Grid {
	var next []uint8
	for _, c := range coords {
		i, ok := g.IndexOf(c.Row, c.Col)
		if !ok || g.cells[i] == Alive {
			continue
		}
		if next == nil {
			next = g.Cells()
		}
		next[i] = Alive
	}
	if next == nil {
		return g
	}
	return Grid{width: g.width, height: g.height, cells: next}
}

// NextState applies B3/S23 to a single cell.
func NextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Step computes the next generation. Every cell is evaluated against g, never
// against the partially built result. When the next generation is identical
// to g, Step returns g and false.
func Step(g Grid) (Grid, bool) {
	next := make([]uint8, len(g.cells))
	changed := false
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			i := row*g.width + col
			if NextState(g.cells[i] == Alive, g.CountLiveNeighbors(row, col)) {
				next[i] = Alive
			}
			if next[i] != g.cells[i] {
				changed = true
			}
		}
	}
	if !changed {
		return g, false
	}
	return Grid{width: g.width, height: g.height, cells: next}, true
}

// Randomize returns a grid of the same size where each cell is independently
// alive with probability 0.5.
func Randomize(g Grid, rng *rand.Rand) Grid {
	next := make([]uint8, len(g.cells))
	for i := range next {
		next[i] = uint8(rng.IntN(2))
	}
	return Grid{width: g.width, height: g.height, cells: next}
}

// String renders the grid as rows of '#' (alive) and '.' (dead).
func (g Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if g.cells[row*g.width+col] == Alive {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
