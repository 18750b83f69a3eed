package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"os"

	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/render"
)

// FrameDelay is the per-frame delay of exported GIFs in hundredths of a second.
const FrameDelay = 10

// Frames steps g up to generations times and returns every generation seen,
// starting with g itself. Stepping stops early once the board settles.
func Frames(g life.Grid, generations int) []life.Grid {
	out := []life.Grid{g}
	for i := 0; i < generations; i++ {
		next, changed := life.Step(g)
		if !changed {
			break
		}
		out = append(out, next)
		g = next
	}
	return out
}

// Frame paints one generation onto a two-colour paletted image.
func Frame(g life.Grid, style Style) *image.Paletted {
	c := style.cell()
	img := image.NewPaletted(c.Bounds(g), color.Palette{style.Background, style.Alive})
	for _, r := range render.Rects(g, c) {
		draw.Draw(img, r, &image.Uniform{C: style.Alive}, image.Point{}, draw.Src)
	}
	return img
}

// GIF builds a looping animation of g and up to generations successors.
func GIF(g life.Grid, generations int, style Style) *gif.GIF {
	anim := &gif.GIF{LoopCount: 0}
	for _, f := range Frames(g, generations) {
		anim.Image = append(anim.Image, Frame(f, style))
		anim.Delay = append(anim.Delay, FrameDelay)
	}
	return anim
}

// EncodeGIF writes the animation to w.
func EncodeGIF(w io.Writer, g life.Grid, generations int, style Style) error {
	if err := gif.EncodeAll(w, GIF(g, generations, style)); err != nil {
		return fmt.Errorf("export gif: %w", err)
	}
	return nil
}

// createFile opens image files for writing.
var createFile = func(path string) (io.WriteCloser, error) { return os.Create(path) }

// WriteGIF writes the animation to path.
func WriteGIF(path string, g life.Grid, generations int, style Style) (err error) {
	f, err := createFile(path)
	if err != nil {
		return fmt.Errorf("export gif: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export gif: %w", cerr)
		}
	}()
	return EncodeGIF(f, g, generations, style)
}
