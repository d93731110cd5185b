// Package maze builds the static occupancy grid a session is played on.
//
// The generator lays a lattice of pillars on every odd/odd cell and then
// grows one extra wall off each inner pillar in a random direction. The
// result is "some occupancy grid", not a perfect maze: nothing guarantees
// that the goal is reachable from the start.
package maze

import (
	"strings"
	"unicode/utf8"
)

// Cell is the state of one grid square.
type Cell uint8

const (
	Open Cell = iota
	Wall
)

// String returns "open" or "wall".
func (c Cell) String() string {
	if c == Wall {
		return "wall"
	}
	return "open"
}

// Position is a grid coordinate. X is the column, Y the row.
type Position struct {
	X, Y int
}

// Add returns p shifted by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Grid is a square N*N occupancy matrix indexed [row][col], i.e. [y][x].
// A Grid is never mutated after Generate returns it, so it is safe to share
// between goroutines and snapshots.
type Grid struct {
	size  int
	cells [][]Cell
}

func newGrid(size int) *Grid {
	cells := make([][]Cell, size)
	for y := range cells {
		cells[y] = make([]Cell, size)
	}
	return &Grid{size: size, cells: cells}
}

// Size returns N.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether p lies inside [0, N-1] on both axes.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.size && p.Y >= 0 && p.Y < g.size
}

// At returns the cell at p. Out-of-bounds positions read as Wall:
// obstacle advance uses this to despawn monkeys that fall off the bottom
// row, and Reachable uses it to stop the search at the edge. Player moves
// are clamped before they get here.
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[p.Y][p.X]
}

// IsOpen reports whether p is inside the grid and walkable.
func (g *Grid) IsOpen(p Position) bool {
	return g.At(p) == Open
}

// Walls counts wall cells.
func (g *Grid) Walls() int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c == Wall {
				n++
			}
		}
	}
	return n
}

// String renders the grid one row per line: '#' for walls, '.' for open cells.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.size*g.size + g.size)
	for y, row := range g.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			if c == Wall {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// Parse builds a grid from the String format. Rows must all be as long as
// there are rows; any rune other than '#' is open. Used by tests and tools
// that need a hand-drawn board.
func Parse(layout string) (*Grid, bool) {
	lines := strings.Split(strings.TrimSpace(layout), "\n")
	g := newGrid(len(lines))
	for y, line := range lines {
		line = strings.TrimSpace(line)
		if utf8.RuneCountInString(line) != g.size {
			return nil, false
		}
		x := 0
		for _, ch := range line {
			if ch == '#' {
				g.cells[y][x] = Wall
			}
			x++
		}
	}
	return g, true
}
