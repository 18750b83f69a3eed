package gui

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/lifesim/internal/draw"
	"github.com/san-kum/lifesim/internal/render"
	"github.com/san-kum/lifesim/internal/viz"
)

func cellOf(w, h int) render.Cell {
	return render.Cell{Width: w, Height: h}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(viz.RGBA(a.Theme.Background))

	a.drawBoard()
	if a.ShowLines {
		a.drawLines()
	}
	if a.Session.Mirroring() {
		a.drawPreview()
	}
	a.drawHUD()

	rl.EndDrawing()
}

// drawBoard paints one rectangle per live cell.
func (a *App) drawBoard() {
	l := a.Session.Layout()
	g := a.Session.Grid()
	col := viz.RGBA(a.Theme.Alive)
	for _, r := range render.Rects(g, cellOf(l.CellWidth, l.CellHeight)) {
		rl.DrawRectangle(int32(r.Min.X), int32(r.Min.Y), int32(r.Dx()), int32(r.Dy()), col)
	}
}

func (a *App) drawLines() {
	l := a.Session.Layout()
	col := viz.RGBA(a.Theme.GridLine)
	for _, r := range render.Lines(a.Session.Grid(), cellOf(l.CellWidth, l.CellHeight)) {
		rl.DrawLine(int32(r.Min.X), int32(r.Min.Y), int32(r.Max.X), int32(r.Max.Y), col)
	}
}

// drawPreview outlines the hovered cell and its reflections.
func (a *App) drawPreview() {
	l := a.Session.Layout()
	g := a.Session.Grid()
	pos := rl.GetMousePosition()
	row, col := l.CellAt(int(pos.X), int(pos.Y))
	if _, ok := g.IndexOf(row, col); !ok {
		return
	}
	c := viz.RGBA(a.Theme.Accent)
	outline := func(row, col int) {
		if _, ok := g.IndexOf(row, col); !ok {
			return
		}
		rl.DrawRectangleLines(int32(col*l.CellWidth), int32(row*l.CellHeight), int32(l.CellWidth), int32(l.CellHeight), c)
	}
	outline(row, col)
	for _, m := range draw.Reflections(g, row, col) {
		outline(m.Row, m.Col)
	}
}

func (a *App) drawHUD() {
	top := int(rl.GetScreenHeight()) - hudHeight
	w := rl.GetScreenWidth()
	rl.DrawRectangle(0, int32(top), int32(w), hudHeight, viz.RGBA(a.Theme.Dead))

	status, col := "PAUSED", viz.RGBA(a.Theme.Paused)
	switch {
	case a.Session.Drawing():
		status = strings.ToUpper(a.Session.Phase().String())
	case a.Session.Running():
		status, col = "RUNNING", viz.RGBA(a.Theme.Running)
	}
	if a.Session.Mirroring() {
		status += " MIRROR"
	}
	a.drawText(status, 10, top+6, 16, col)
	a.drawText(fmt.Sprintf("gen %d  pop %.0f  peak %d  delay %v", a.Pop.Generation(), a.Pop.Value(), a.Pop.Peak(), a.Session.FrameDelay()),
		10, top+26, 14, viz.RGBA(a.Theme.Text))
	if a.status != "" {
		a.drawText(a.status, 220, top+6, 14, viz.RGBA(a.Theme.Muted))
	}
	a.drawTelemetry(int(w)-210, top+6, 200, hudHeight-12)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

// drawTelemetry plots the population history as a line strip.
func (a *App) drawTelemetry(x, y, width, height int) {
	hist := a.Pop.History()
	if len(hist) < 2 || width < 1 {
		return
	}
	maxVal := hist[0]
	for _, v := range hist {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}
	points := make([]rl.Vector2, len(hist))
	for i, v := range hist {
		px := float32(x) + float32(i)/float32(len(hist)-1)*float32(width)
		py := float32(y+height) - float32(v/maxVal)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}
	rl.DrawLineStrip(points, viz.RGBA(a.Theme.Accent))
}
