package board

import "fmt"

// Coord is a (row, column) grid position.
type Coord struct {
	Row, Col int
}

// C is shorthand for Coord{Row: row, Col: col}.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// In reports whether c lies inside a height x width grid.
func (c Coord) In(height, width int) bool {
	return c.Row >= 0 && c.Row < height && c.Col >= 0 && c.Col < width
}

// kingMoves are the eight offsets of an 8-connected neighbourhood.
var kingMoves = [8]Coord{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// Adjacent returns the in-bounds 8-neighbours of c on a height x width grid:
// 3 for a corner, 5 for an edge cell, 8 otherwise. c itself need not be in bounds.
// Callers must not rely on the order of the result.
func Adjacent(c Coord, height, width int) []Coord {
	out := make([]Coord, 0, len(kingMoves))
	for _, d := range kingMoves {
		n := Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if n.In(height, width) {
			out = append(out, n)
		}
	}
	return out
}
