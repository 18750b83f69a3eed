// Package export writes boards to image files: SVG snapshots of a single
// generation and animated GIFs of a run.
package export

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/render"
)

// DefaultCell is the pixel size of a cell in exported images.
var DefaultCell = render.Cell{Width: 10, Height: 10}

// Style controls how exported boards look.
type Style struct {
	Cell       render.Cell
	Alive      color.RGBA
	Background color.RGBA
}

// DefaultStyle is white cells on a near-black background.
var DefaultStyle = Style{
	Cell:       DefaultCell,
	Alive:      color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff},
	Background: color.RGBA{R: 0x0a, G: 0x0a, B: 0x0a, A: 0xff},
}

func (s Style) cell() render.Cell {
	if s.Cell.Width < 1 || s.Cell.Height < 1 {
		return DefaultCell
	}
	return s.Cell
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// SVG renders one generation as an SVG document with a rect per live cell.
func SVG(g life.Grid, style Style) string {
	c := style.cell()
	b := c.Bounds(g)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, b.Dx(), b.Dy(), b.Dx(), b.Dy(), hex(style.Background), hex(style.Alive)))

	for _, r := range render.Rects(g, c) {
		sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d"/>
`, r.Min.X, r.Min.Y, r.Dx(), r.Dy()))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// WriteSVG writes SVG(g, style) to path.
func WriteSVG(path string, g life.Grid, style Style) error {
	if err := os.WriteFile(path, []byte(SVG(g, style)), 0o644); err != nil {
		return fmt.Errorf("export svg: %w", err)
	}
	return nil
}
