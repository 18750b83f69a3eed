// Package pattern holds a small library of well-known Game of Life seeds.
package pattern

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/lifesim/internal/life"
)

var ErrUnknownPattern = errors.New("pattern: unknown pattern")

// Pattern is a named set of live offsets relative to its top-left corner.
type Pattern struct {
	Name   string
	Width  int
	Height int
	Cells  []life.Coord
}

// Parse builds a pattern from rows where '#' or 'O' marks a live cell.
func Parse(name string, rows ...string) Pattern {
	p := Pattern{Name: name, Height: len(rows)}
	for r, line := range rows {
		if len(line) > p.Width {
			p.Width = len(line)
		}
		for c, ch := range line {
			if ch == '#' || ch == 'O' {
				p.Cells = append(p.Cells, life.Coord{Row: r, Col: c})
			}
		}
	}
	return p
}

var library = map[string]Pattern{
	"block":   Parse("block", "##", "##"),
	"blinker": Parse("blinker", "###"),
	"toad":    Parse("toad", ".###", "###."),
	"beacon":  Parse("beacon", "##..", "##..", "..##", "..##"),
	"glider":  Parse("glider", ".#.", "..#", "###"),
	"lwss":    Parse("lwss", ".#..#", "#....", "#...#", "####."),
	"pulsar": Parse("pulsar",
		"..###...###..",
		".............",
		"#....#.#....#",
		"#....#.#....#",
		"#....#.#....#",
		"..###...###..",
		".............",
		"..###...###..",
		"#....#.#....#",
		"#....#.#....#",
		"#....#.#....#",
		".............",
		"..###...###..",
	),
}

// Get returns the named pattern.
func Get(name string) (Pattern, error) {
	p, ok := library[strings.ToLower(name)]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPattern, name, Names())
	}
	return p, nil
}

// Names lists the available patterns in sorted order.
func Names() []string {
	names := make([]string, 0, len(library))
	for n := range library {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Stamp sets the pattern alive on g with its top-left corner at (row, col).
// Cells that would land outside the grid are dropped.
func (p Pattern) Stamp(g life.Grid, row, col int) life.Grid {
	coords := make([]life.Coord, len(p.Cells))
	for i, c := range p.Cells {
		coords[i] = life.Coord{Row: row + c.Row, Col: col + c.Col}
	}
	return g.With(coords...)
}

// Centered stamps the pattern in the middle of g.
func (p Pattern) Centered(g life.Grid) life.Grid {
	return p.Stamp(g, (g.Height()-p.Height)/2, (g.Width()-p.Width)/2)
}
