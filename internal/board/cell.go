// Package board implements the Minesweeper board model: mine placement with a
// safe opening cell, flood-fill reveal, and the win/loss predicates.
//
// The package has no UI dependencies. Adapters (console, TUI) own a *Board and
// drive it through New, Reveal, IsGameWon and IsGameOver.
package board

import "strconv"

// CellState is the player-visible state of a cell.
type CellState uint8

const (
	Hidden CellState = iota
	Revealed
	// Marked exists as a value only. No operation sets or reads it.
	Marked
)

// String returns a human-readable name for the state.
func (s CellState) String() string {
	switch s {
	case Hidden:
		return "Hidden"
	case Revealed:
		return "Revealed"
	case Marked:
		return "Marked"
	default:
		return "Unknown"
	}
}

// Content is what a cell holds. Values 1..8 are neighbour mine counts.
type Content int8

const (
	Mine  Content = -1
	Space Content = 0
)

// IsMine reports whether the content is a mine.
func (c Content) IsMine() bool {
	return c == Mine
}

// IsSpace reports whether the content is an empty cell with no neighbouring mines.
func (c Content) IsSpace() bool {
	return c == Space
}

// Number returns the neighbour mine count, or 0 for Space and Mine.
func (c Content) Number() int {
	if c <= 0 {
		return 0
	}
	return int(c)
}

func (c Content) String() string {
	switch {
	case c == Mine:
		return "Mine"
	case c == Space:
		return "Space"
	default:
		return "Number(" + strconv.Itoa(int(c)) + ")"
	}
}

// Cell is a plain value record. Content is fixed at creation; only State changes.
type Cell struct {
	State   CellState
	Content Content
}

// IsRevealed reports whether the cell has been uncovered.
func (c Cell) IsRevealed() bool {
	return c.State == Revealed
}
