// Package life provides the Game of Life grid and its transition rule.
//
// The package defines the value types the rest of lifesim is built on:
//
//   - [Grid]: an immutable, hard-bounded board of 0/1 cells in row-major order
//   - [Coord]: a (row, column) position on a grid
//   - [Step]: the B3/S23 transition from one generation to the next
//
// # Example
//
//	g, _ := life.New(5, 5)
//	g = g.With(life.Coord{Row: 2, Col: 1}, life.Coord{Row: 2, Col: 2}, life.Coord{Row: 2, Col: 3})
//	next, changed := life.Step(g)
//
// # Boundary
//
// Cells outside the grid are permanently dead. Nothing wraps: a coordinate
// beyond an edge has no index and contributes nothing to neighbour counts.
//
// # Immutability
//
// Every operation that produces a different board allocates a fresh cell
// slice. A Grid can be shared freely between the session and a renderer.
package life
