package board

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Status is the state of a game as read from its board.
type Status uint8

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Reveal uncovers the cell at c. If it is a Space, every cell reachable from it
// through Space cells is uncovered too, along with the numbered cells bordering
// that region. Mines are never swept in, only revealed when targeted directly.
// Revealing an already revealed cell is a no-op.
func (b *Board) Reveal(c Coord) error {
	if !b.Contains(c) {
		return fmt.Errorf("%w: %v outside %dx%d grid", ErrInvalidPosition, c, b.height, b.width)
	}

	visited := mapset.New[Coord]()
	stack := []Coord{c}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited.Has(cur) {
			continue
		}
		visited.Put(cur)

		cell := &b.cells[b.index(cur)]
		if cell.State == Revealed {
			continue
		}
		cell.State = Revealed
		if !cell.Content.IsSpace() {
			continue
		}
		for _, n := range Adjacent(cur, b.height, b.width) {
			if !visited.Has(n) {
				stack = append(stack, n)
			}
		}
	}
	return nil
}

// IsGameWon reports whether every safe cell is revealed and every mine is hidden.
func (b *Board) IsGameWon() bool {
	for _, cell := range b.cells {
		safeRevealed := cell.State == Revealed && !cell.Content.IsMine()
		mineHidden := cell.State == Hidden && cell.Content.IsMine()
		if !safeRevealed && !mineHidden {
			return false
		}
	}
	return true
}

// IsGameOver reports whether any mine has been revealed.
func (b *Board) IsGameOver() bool {
	for _, cell := range b.cells {
		if cell.State == Revealed && cell.Content.IsMine() {
			return true
		}
	}
	return false
}

// Status returns Lost, Won or InProgress, checking loss first.
func (b *Board) Status() Status {
	switch {
	case b.IsGameOver():
		return Lost
	case b.IsGameWon():
		return Won
	default:
		return InProgress
	}
}

// RevealedCount returns the number of revealed cells.
func (b *Board) RevealedCount() int {
	n := 0
	for _, cell := range b.cells {
		if cell.State == Revealed {
			n++
		}
	}
	return n
}

// SafeRemaining returns how many non-mine cells are still hidden.
func (b *Board) SafeRemaining() int {
	n := 0
	for _, cell := range b.cells {
		if cell.State != Revealed && !cell.Content.IsMine() {
			n++
		}
	}
	return n
}
