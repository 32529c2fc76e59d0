package board

import (
	"fmt"
	"slices"
)

// MaxDimension is the largest height or width a board may have.
const MaxDimension = 1000

// Board is a height x width grid of cells stored row-major.
// A *Board is owned by a single game loop and mutated in place by Reveal.
type Board struct {
	height   int
	width    int
	numMines int
	cells    []Cell
}

// checkDimensions rejects sizes outside 1..MaxDimension before anything multiplies them.
func checkDimensions(height, width int) error {
	if height < 1 || width < 1 || height > MaxDimension || width > MaxDimension {
		return fmt.Errorf("%w: %dx%d (each side must be 1-%d)", ErrInvalidDimensions, height, width, MaxDimension)
	}
	return nil
}

// newHidden allocates an all-Hidden, all-Space board.
func newHidden(height, width int) *Board {
	return &Board{
		height: height,
		width:  width,
		cells:  make([]Cell, height*width),
	}
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// NumMines returns the number of mine cells.
func (b *Board) NumMines() int {
	return b.numMines
}

// Contains reports whether c is inside the board.
func (b *Board) Contains(c Coord) bool {
	return c.In(b.height, b.width)
}

func (b *Board) index(c Coord) int {
	return c.Row*b.width + c.Col
}

// At returns the cell at c. It returns the zero Cell and false when c is out of bounds.
func (b *Board) At(c Coord) (Cell, bool) {
	if !b.Contains(c) {
		return Cell{}, false
	}
	return b.cells[b.index(c)], true
}

// Each calls fn for every cell in row-major order.
func (b *Board) Each(fn func(c Coord, cell Cell)) {
	for i, cell := range b.cells {
		fn(Coord{Row: i / b.width, Col: i % b.width}, cell)
	}
}

// Row returns a copy of the cells in row r, or nil if r is out of range.
func (b *Board) Row(r int) []Cell {
	if r < 0 || r >= b.height {
		return nil
	}
	return slices.Clone(b.cells[r*b.width : (r+1)*b.width])
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{
		height:   b.height,
		width:    b.width,
		numMines: b.numMines,
		cells:    slices.Clone(b.cells),
	}
}

// FromMines builds a hidden board with mines at exactly the given coordinates
// and neighbour counts computed for every other cell. No cell is revealed.
func FromMines(height, width int, mines []Coord) (*Board, error) {
	if err := checkDimensions(height, width); err != nil {
		return nil, err
	}
	b := newHidden(height, width)
	for _, m := range mines {
		if !b.Contains(m) {
			return nil, fmt.Errorf("%w: mine %v outside %dx%d grid", ErrInvalidPosition, m, height, width)
		}
		i := b.index(m)
		if b.cells[i].Content.IsMine() {
			return nil, fmt.Errorf("%w: duplicate mine %v", ErrInvalidPosition, m)
		}
		b.cells[i].Content = Mine
		b.numMines++
	}
	b.computeCounts()
	return b, nil
}

// computeCounts sets every non-mine cell to its neighbour mine count.
func (b *Board) computeCounts() {
	for i := range b.cells {
		if b.cells[i].Content.IsMine() {
			continue
		}
		c := Coord{Row: i / b.width, Col: i % b.width}
		n := 0
		for _, adj := range Adjacent(c, b.height, b.width) {
			if b.cells[b.index(adj)].Content.IsMine() {
				n++
			}
		}
		b.cells[i].Content = Content(n)
	}
}
