// Package draw turns pointer input into grid mutations: single-cell painting,
// four-way mirrored painting, and viewport-driven resizing.
package draw

import "github.com/san-kum/lifesim/internal/life"

// PaintCell returns g with (row, col) set alive. Painting never erases: a live
// or out-of-bounds target returns g unchanged.
func PaintCell(g life.Grid, row, col int) life.Grid {
	return g.With(life.Coord{Row: row, Col: col})
}

// Reflections returns the three cells that mirror (row, col) across the grid's
// vertical and horizontal centre lines: (row, mirrorCol), (mirrorRow, col) and
// (mirrorRow, mirrorCol). Results may fall outside the grid.
func Reflections(g life.Grid, row, col int) [3]life.Coord {
	halfW, halfH := g.Width()/2, g.Height()/2
	dc, dr := abs(col-halfW), abs(row-halfH)

	mc := halfW + dc
	if col > halfW {
		mc = halfW - dc
	}
	mr := halfH + dr
	if row > halfH {
		mr = halfH - dr
	}
	return [3]life.Coord{
		{Row: row, Col: mc},
		{Row: mr, Col: col},
		{Row: mr, Col: mc},
	}
}

// PaintCellMirrored paints (row, col) and its reflections. A live or
// out-of-bounds target is a no-op; reflections outside the grid are skipped.
func PaintCellMirrored(g life.Grid, row, col int) life.Grid {
	if _, ok := g.IndexOf(row, col); !ok || g.Alive(row, col) {
		return g
	}
	r := Reflections(g, row, col)
	return g.With(life.Coord{Row: row, Col: col}, r[0], r[1], r[2])
}

// Resize returns a new all-dead grid. Resizing always clears the board.
func Resize(newWidth, newHeight int) (life.Grid, error) {
	return life.New(newWidth, newHeight)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
