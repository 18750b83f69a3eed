// Package render maps a grid onto pixel rectangles for any drawing surface.
package render

import (
	"image"

	"github.com/san-kum/lifesim/internal/life"
)

// Cell is the pixel size of one grid cell. It is rendering configuration and
// never part of the grid itself.
type Cell struct {
	Width, Height int
}

// Bounds returns the pixel size of the whole board.
func (c Cell) Bounds(g life.Grid) image.Rectangle {
	return image.Rect(0, 0, g.Width()*c.Width, g.Height()*c.Height)
}

// Rects returns one filled rectangle per live cell, in index order. Cell i sits
// at ((i % width) * cellWidth, (i / width) * cellHeight).
func Rects(g life.Grid, c Cell) []image.Rectangle {
	cells := g.Cells()
	w := g.Width()
	out := make([]image.Rectangle, 0, g.Population())
	for i, v := range cells {
		if v != life.Alive {
			continue
		}
		x, y := (i%w)*c.Width, (i/w)*c.Height
		out = append(out, image.Rect(x, y, x+c.Width, y+c.Height))
	}
	return out
}

// Lines returns the interior grid lines of the board as degenerate
// rectangles: vertical lines first, then horizontal.
func Lines(g life.Grid, c Cell) []image.Rectangle {
	b := c.Bounds(g)
	out := make([]image.Rectangle, 0, g.Width()+g.Height())
	for x := c.Width; x < b.Dx(); x += c.Width {
		out = append(out, image.Rect(x, 0, x, b.Dy()))
	}
	for y := c.Height; y < b.Dy(); y += c.Height {
		out = append(out, image.Rect(0, y, b.Dx(), y))
	}
	return out
}
