package draw

import (
	"errors"
	"testing"

	"github.com/san-kum/lifesim/internal/life"
)

func grid(t *testing.T, w, h int) life.Grid {
	t.Helper()
	g, err := life.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestPaintCellIdempotent(t *testing.T) {
	g := grid(t, 5, 5)
	once := PaintCell(g, 2, 3)
	twice := PaintCell(once, 2, 3)

	if !once.Alive(2, 3) {
		t.Fatal("expected painted cell alive")
	}
	if !twice.Equal(once) {
		t.Error("painting a live cell must not change the grid")
	}
	if g.Population() != 0 {
		t.Error("paint mutated its input")
	}
}

func TestPaintCellOutOfBounds(t *testing.T) {
	g := grid(t, 3, 3)
	for _, c := range []life.Coord{{Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: 3, Col: 0}, {Row: 0, Col: 3}} {
		if got := PaintCell(g, c.Row, c.Col); got.Population() != 0 {
			t.Errorf("paint at %v changed the grid", c)
		}
	}
}

func TestPaintCellMirroredOdd(t *testing.T) {
	const n = 7
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			g := PaintCellMirrored(grid(t, n, n), row, col)
			want := []life.Coord{
				{Row: row, Col: col},
				{Row: row, Col: n - 1 - col},
				{Row: n - 1 - row, Col: col},
				{Row: n - 1 - row, Col: n - 1 - col},
			}
			for _, c := range want {
				if !g.Alive(c.Row, c.Col) {
					t.Errorf("paint (%d,%d): expected %v alive", row, col, c)
				}
			}
			if g.Population() > 4 {
				t.Errorf("paint (%d,%d): population %d exceeds 4", row, col, g.Population())
			}
		}
	}
}

func TestPaintCellMirroredEven(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
		want     []life.Coord
	}{
		{"interior top-left", 1, 1, []life.Coord{{Row: 1, Col: 1}, {Row: 1, Col: 5}, {Row: 5, Col: 1}, {Row: 5, Col: 5}}},
		{"interior bottom-right", 4, 4, []life.Coord{{Row: 4, Col: 4}, {Row: 4, Col: 2}, {Row: 2, Col: 4}, {Row: 2, Col: 2}}},
		{"edge reflections skipped", 0, 0, []life.Coord{{Row: 0, Col: 0}}},
		{"edge row only", 0, 2, []life.Coord{{Row: 0, Col: 2}, {Row: 0, Col: 4}}},
		{"centre lines", 3, 3, []life.Coord{{Row: 3, Col: 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := PaintCellMirrored(grid(t, 6, 6), tt.row, tt.col)
			for _, c := range tt.want {
				if !g.Alive(c.Row, c.Col) {
					t.Errorf("expected %v alive\n%s", c, g)
				}
			}
			if g.Population() != len(tt.want) {
				t.Errorf("expected population %d, got %d\n%s", len(tt.want), g.Population(), g)
			}
		})
	}
}

func TestPaintCellMirroredLiveTargetNoop(t *testing.T) {
	g := PaintCell(grid(t, 5, 5), 0, 0)
	if got := PaintCellMirrored(g, 0, 0); !got.Equal(g) {
		t.Error("mirrored paint over a live cell must be a no-op")
	}
	if got := PaintCellMirrored(g, 9, 9); !got.Equal(g) {
		t.Error("mirrored paint out of bounds must be a no-op")
	}
}

func TestResizeClears(t *testing.T) {
	g, err := Resize(12, 4)
	if err != nil {
		t.Fatal(err)
	}
	if g.Width() != 12 || g.Height() != 4 || g.Population() != 0 {
		t.Errorf("expected empty 12x4, got %dx%d pop %d", g.Width(), g.Height(), g.Population())
	}
	if _, err := Resize(0, 4); !errors.Is(err, life.ErrInvalidDimension) {
		t.Errorf("expected ErrInvalidDimension, got %v", err)
	}
}

func TestLayoutCellAt(t *testing.T) {
	l := Layout{CellWidth: 10, CellHeight: 5}
	tests := []struct {
		px, py   int
		row, col int
	}{
		{0, 0, 0, 0},
		{9, 4, 0, 0},
		{10, 5, 1, 1},
		{25, 12, 2, 2},
		{-1, 0, 0, -1},
		{0, -1, -1, 0},
		{-10, -5, -1, -1},
		{-11, -6, -2, -2},
	}
	for _, tt := range tests {
		row, col := l.CellAt(tt.px, tt.py)
		if row != tt.row || col != tt.col {
			t.Errorf("CellAt(%d,%d) = (%d,%d) want (%d,%d)", tt.px, tt.py, row, col, tt.row, tt.col)
		}
	}
	if got := l.ColumnsFor(805); got != 80 {
		t.Errorf("ColumnsFor(805) = %d, want 80", got)
	}
}

func TestControllerGesture(t *testing.T) {
	c := NewController(Layout{CellWidth: 10, CellHeight: 10})
	g := grid(t, 5, 5)

	if next, painted := c.Move(g, 15, 15, false); painted || !next.Equal(g) {
		t.Error("move while idle must not paint")
	}

	g, painted := c.Begin(g, 15, 25, false)
	if !painted || !g.Alive(2, 1) || !c.Drawing() {
		t.Fatalf("begin should paint (2,1) and enter drawing, got phase %v\n%s", c.Phase(), g)
	}

	if _, painted := c.Move(g, 19, 29, false); painted {
		t.Error("move over a live cell must be ignored")
	}
	if _, painted := c.Move(g, 500, 25, false); painted {
		t.Error("move out of bounds must be ignored")
	}

	g, painted = c.Move(g, 45, 5, true)
	if !painted || !g.Alive(0, 4) || !g.Alive(0, 0) || !g.Alive(4, 4) || !g.Alive(4, 0) {
		t.Errorf("mirrored move should paint four corners\n%s", g)
	}

	c.End()
	if c.Phase() != Idle {
		t.Error("end should return to idle")
	}
	if _, painted := c.Move(g, 25, 25, false); painted {
		t.Error("move after end must not paint")
	}
}

func TestReflections(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		row, col int
		want     [3]life.Coord
	}{
		{"odd corner", 5, 5, 0, 0, [3]life.Coord{{Row: 0, Col: 4}, {Row: 4, Col: 0}, {Row: 4, Col: 4}}},
		{"odd centre", 5, 5, 2, 2, [3]life.Coord{{Row: 2, Col: 2}, {Row: 2, Col: 2}, {Row: 2, Col: 2}}},
		{"odd far side", 5, 5, 3, 4, [3]life.Coord{{Row: 3, Col: 0}, {Row: 1, Col: 4}, {Row: 1, Col: 0}}},
		{"even corner leaves grid", 6, 6, 0, 0, [3]life.Coord{{Row: 0, Col: 6}, {Row: 6, Col: 0}, {Row: 6, Col: 6}}},
		{"even inner", 6, 6, 1, 4, [3]life.Coord{{Row: 1, Col: 2}, {Row: 5, Col: 4}, {Row: 5, Col: 2}}},
		{"wide", 7, 3, 0, 1, [3]life.Coord{{Row: 0, Col: 5}, {Row: 2, Col: 1}, {Row: 2, Col: 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reflections(grid(t, tt.w, tt.h), tt.row, tt.col); got != tt.want {
				t.Errorf("Reflections(%d,%d) = %v, want %v", tt.row, tt.col, got, tt.want)
			}
		})
	}
}

func TestLayoutColumnsFor(t *testing.T) {
	l := Layout{CellWidth: 10, CellHeight: 4}
	if got := l.ColumnsFor(95); got != 9 {
		t.Errorf("ColumnsFor(95) = %d", got)
	}
	if got := l.ColumnsFor(-1); got != -1 {
		t.Errorf("ColumnsFor(-1) = %d", got)
	}
}
