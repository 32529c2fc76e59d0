package minesweeper

import (
	"github.com/vovakirdan/minesweeper/internal/board"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StateWaiting     GameStateType = "waiting_for_opening"
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StateLost        GameStateType = "lost"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Height int
	Width  int
	Mines  int
	Cursor board.Coord
	Moves  int
	Rows   []string // player view, one glyph per cell
	State  GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.status == board.Won:
		state = StateWon
	case g.status == board.Lost:
		state = StateLost
	case g.board == nil:
		state = StateWaiting
	}

	rows := make([]string, g.params.Height)
	for r := range g.params.Height {
		line := make([]rune, g.params.Width)
		for c := range g.params.Width {
			cell := board.Cell{State: board.Hidden}
			if g.board != nil {
				cell, _ = g.board.At(board.C(r, c))
			}
			line[c] = g.glyphs.Rune(cell, false)
		}
		rows[r] = string(line)
	}

	return Snapshot{
		Height: g.params.Height,
		Width:  g.params.Width,
		Mines:  g.params.Mines,
		Cursor: g.cursor,
		Moves:  g.moves,
		Rows:   rows,
		State:  state,
	}
}
