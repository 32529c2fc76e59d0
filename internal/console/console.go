// Package console plays Minesweeper over a line-oriented text stream.
//
// The operator is asked for the board size and mine count, then for one
// "row col" coordinate per turn. Coordinates are zero-based.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/minesweeper/internal/board"
	"github.com/vovakirdan/minesweeper/internal/config"
	"github.com/vovakirdan/minesweeper/internal/core"
	"github.com/vovakirdan/minesweeper/internal/games/minesweeper"
)

// Options configures a console session.
type Options struct {
	// Config supplies the board and glyphs. When Ask is set its board values
	// are offered as prompt defaults.
	Config config.Config
	Ask    bool
	Seed   int64
	Logger *log.Logger
}

type session struct {
	ctx   context.Context
	lines <-chan input
	out   io.Writer
}

// input is one line read from the operator, or the error that ended reading.
type input struct {
	text string
	err  error
}

// Run plays one game and returns how it ended.
// It returns an error wrapping io.ErrUnexpectedEOF if input ends mid-game,
// or the context error once ctx is cancelled.
func Run(ctx context.Context, in io.Reader, out io.Writer, opts Options) (board.Status, error) {
	done := make(chan struct{})
	defer close(done)
	s := &session{ctx: ctx, lines: readLines(in, done), out: out}
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if opts.Ask {
		params, err := s.askBoard(cfg.Board)
		if err != nil {
			return board.InProgress, err
		}
		cfg.Board = params
	}
	if err := cfg.Validate(); err != nil {
		return board.InProgress, err
	}

	g := minesweeper.New(cfg, logger)
	g.Reset(core.RuntimeConfig{Seed: opts.Seed})
	glyphs := cfg.BoardGlyphs()

	for g.Status() == board.InProgress {
		b := view(g, cfg.Board)
		s.printf("\n%s", Grid(b, glyphs, false))
		s.printf("Safe cells left: %d  Revealed: %d\n", g.State().Remaining, b.RevealedCount())

		line, err := s.readLine("Row Col: ")
		if err != nil {
			return g.Status(), err
		}
		c, err := ParseCoord(line)
		if err != nil {
			s.printf("Enter a row and a column, for example: 2 3\n")
			continue
		}
		if b := g.Board(); b != nil {
			if cell, ok := b.At(c); ok && cell.IsRevealed() {
				s.printf("Cell %d %d is already revealed.\n", c.Row, c.Col)
				continue
			}
		}
		if err := g.Reveal(c); err != nil {
			if errors.Is(err, board.ErrInvalidPosition) {
				s.printf("Row must be 0-%d and column 0-%d.\n", cfg.Board.Height-1, cfg.Board.Width-1)
				continue
			}
			return g.Status(), err
		}
	}

	s.printf("\n%s", Grid(g.Board(), glyphs, true))
	if g.Status() == board.Won {
		s.printf("You win! Cleared in %d moves.\n", g.State().Moves)
	} else {
		s.printf("Boom! You hit a mine at %s.\n", g.Cursor())
	}
	logger.Debug("console game finished", "game", g.ID(), "result", g.Status())
	return g.Status(), nil
}

// view returns the board to draw, or an all-hidden one before the opening move.
func view(g *minesweeper.Game, params config.BoardConfig) *board.Board {
	if b := g.Board(); b != nil {
		return b
	}
	b, _ := board.FromMines(params.Height, params.Width, nil)
	return b
}

func (s *session) askBoard(def config.BoardConfig) (config.BoardConfig, error) {
	var (
		p   config.BoardConfig
		err error
	)
	if p.Height, err = s.askInt("Height", core.Clamp(def.Height, 1, board.MaxDimension), 1, board.MaxDimension); err != nil {
		return p, err
	}
	if p.Width, err = s.askInt("Width", core.Clamp(def.Width, 1, board.MaxDimension), 1, board.MaxDimension); err != nil {
		return p, err
	}
	maxMines := p.Height*p.Width - 1
	if p.Mines, err = s.askInt("Mines", min(def.Mines, maxMines), 0, maxMines); err != nil {
		return p, err
	}
	return p, nil
}

// askInt prompts until it reads an integer in [lo, hi]. An empty line picks def.
func (s *session) askInt(name string, def, lo, hi int) (int, error) {
	for {
		line, err := s.readLine(fmt.Sprintf("%s [%d]: ", name, def))
		if err != nil {
			return 0, err
		}
		if line == "" {
			return def, nil
		}
		n, err := strconv.Atoi(line)
		switch {
		case err != nil:
			s.printf("%s must be a whole number.\n", name)
		case n < lo:
			s.printf("%s must be at least %d.\n", name, lo)
		case n > hi:
			s.printf("%s must be at most %d.\n", name, hi)
		default:
			return n, nil
		}
	}
}

func (s *session) readLine(prompt string) (string, error) {
	if err := s.ctx.Err(); err != nil {
		return "", err
	}
	s.printf("%s", prompt)

	select {
	case <-s.ctx.Done():
		return "", s.ctx.Err()
	case line, ok := <-s.lines:
		switch {
		case !ok:
			return "", fmt.Errorf("console: input ended: %w", io.ErrUnexpectedEOF)
		case line.err != nil:
			return "", fmt.Errorf("console: read input: %w", line.err)
		}
		return strings.TrimSpace(line.text), nil
	}
}

// readLines scans in on its own goroutine so a pending read never blocks
// cancellation. The channel is closed at end of input. Closing done stops the
// goroutine once its current read returns.
func readLines(in io.Reader, done <-chan struct{}) <-chan input {
	lines := make(chan input)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- input{text: sc.Text()}:
			case <-done:
				return
			}
		}
		if err := sc.Err(); err != nil {
			select {
			case lines <- input{err: err}:
			case <-done:
			}
		}
	}()
	return lines
}

func (s *session) printf(format string, args ...any) {
	//nolint:errcheck // Output errors surface as input errors on the next prompt
	fmt.Fprintf(s.out, format, args...)
}
