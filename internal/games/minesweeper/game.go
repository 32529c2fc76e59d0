// Package minesweeper wires the board model to the terminal platform:
// a cursor-driven game session with HUD rendering and snapshots.
package minesweeper

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/minesweeper/internal/board"
	"github.com/vovakirdan/minesweeper/internal/config"
	"github.com/vovakirdan/minesweeper/internal/core"
)

// ErrGameOver is returned by Reveal once the game has been won or lost.
var ErrGameOver = errors.New("minesweeper: game is over")

// Game is one Minesweeper session. The board is generated on the first reveal,
// using the cursor position as the opening coordinate.
type Game struct {
	params config.BoardConfig
	glyphs board.Glyphs
	logger *log.Logger

	id     uuid.UUID
	rng    *rand.Rand
	board  *board.Board // nil until the opening reveal
	cursor board.Coord
	moves  int
	status board.Status

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game for the given configuration. cfg must be valid.
// A nil logger discards log output.
func New(cfg config.Config, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		params: cfg.Board,
		glyphs: cfg.BoardGlyphs(),
		logger: logger,
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Minesweeper"
}

// ID returns the current session id.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Reset starts a new game. The board is not generated until the first reveal.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.id = uuid.New()
	g.rng = board.NewRand(cfg.Seed)
	g.board = nil
	g.cursor = board.C(g.params.Height/2, g.params.Width/2)
	g.moves = 0
	g.status = board.InProgress
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	g.logger.Debug("game reset",
		"game", g.id,
		"height", g.params.Height,
		"width", g.params.Width,
		"mines", g.params.Mines,
		"seed", cfg.Seed,
	)
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.minScreenSize()
	g.tooSmall = w < minW || h < minH
}

// Step applies one input event.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Empty() || g.tooSmall || g.status != board.InProgress {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionDown):
		g.moveCursor(1, 0)
	case in.Has(core.ActionLeft):
		g.moveCursor(0, -1)
	case in.Has(core.ActionRight):
		g.moveCursor(0, 1)
	}

	changed := false
	if in.Has(core.ActionReveal) {
		// reveal logs its own failures
		changed, _ = g.reveal()
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

func (g *Game) moveCursor(dRow, dCol int) {
	g.cursor.Row = core.Clamp(g.cursor.Row+dRow, 0, g.params.Height-1)
	g.cursor.Col = core.Clamp(g.cursor.Col+dCol, 0, g.params.Width-1)
}

// reveal opens the cell under the cursor and reports whether the board changed.
func (g *Game) reveal() (bool, error) {
	if g.board == nil {
		b, err := board.New(g.params.Height, g.params.Width, g.params.Mines, g.cursor, g.rng)
		if err != nil {
			g.logger.Error("cannot generate board", "game", g.id, "error", err)
			return false, fmt.Errorf("minesweeper: generate board: %w", err)
		}
		g.board = b
		g.logger.Info("game started", "game", g.id, "open", g.cursor)
	} else {
		if cell, _ := g.board.At(g.cursor); cell.IsRevealed() {
			return false, nil
		}
		if err := g.board.Reveal(g.cursor); err != nil {
			g.logger.Error("reveal failed", "game", g.id, "at", g.cursor, "error", err)
			return false, err
		}
	}

	g.moves++
	g.status = g.board.Status()
	if g.status != board.InProgress {
		g.logger.Info("game ended",
			"game", g.id,
			"result", g.status,
			"moves", g.moves,
			"at", g.cursor,
		)
	}
	return true, nil
}

// Reveal opens the cell at c directly, moving the cursor there first.
// It is the coordinate-driven entry point used by non-cursor adapters.
func (g *Game) Reveal(c board.Coord) error {
	if !c.In(g.params.Height, g.params.Width) {
		return board.ErrInvalidPosition
	}
	if g.status != board.InProgress {
		return ErrGameOver
	}
	g.cursor = c
	_, err := g.reveal()
	return err
}

// Board returns a copy of the current board, or nil before the opening reveal.
func (g *Game) Board() *board.Board {
	if g.board == nil {
		return nil
	}
	return g.board.Clone()
}

// Cursor returns the cursor position.
func (g *Game) Cursor() board.Coord {
	return g.cursor
}

// Status returns the game status.
func (g *Game) Status() board.Status {
	return g.status
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	remaining := g.params.Height*g.params.Width - g.params.Mines
	if g.board != nil {
		remaining = g.board.SafeRemaining()
	}
	return core.GameState{
		Moves:     g.moves,
		Remaining: remaining,
		GameOver:  g.status != board.InProgress,
		Won:       g.status == board.Won,
	}
}
