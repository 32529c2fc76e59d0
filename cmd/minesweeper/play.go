package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/minesweeper/internal/config"
	"github.com/vovakirdan/minesweeper/internal/console"
	"github.com/vovakirdan/minesweeper/internal/core"
	"github.com/vovakirdan/minesweeper/internal/games/minesweeper"
	"github.com/vovakirdan/minesweeper/internal/platform/tui"
)

var (
	flagHeight int
	flagWidth  int
	flagMines  int
	flagPlain  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a new game.

Controls:
  Arrows/hjkl/wasd  - Move the cursor
  Space/Enter       - Reveal the cell under the cursor
  R                 - New game (after the game ends)
  ?                 - Show all keys
  Q/Ctrl+C          - Quit

With --plain the game is played by typing "row col" coordinates
(zero-based). The board size and mine count are asked for unless
they are given with flags or --config.

Examples:
  minesweeper play
  minesweeper play --mines 20
  minesweeper play --plain
  minesweeper play --config ./expert.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height (overrides config)")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width (overrides config)")
	playCmd.Flags().IntVar(&flagMines, "mines", 0, "Number of mines (overrides config)")
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Play with typed coordinates instead of full-screen")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("height") {
		cfg.Board.Height = flagHeight
	}
	if flags.Changed("width") {
		cfg.Board.Width = flagWidth
	}
	if flags.Changed("mines") {
		cfg.Board.Mines = flagMines
	}
	fixed := flagConfig != "" || flags.Changed("height") || flags.Changed("width") || flags.Changed("mines")

	if flagPlain {
		return playPlain(cmd, cfg, fixed)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	// stderr shares the terminal with the TUI
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	rc := core.DefaultConfig()
	rc.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	game := minesweeper.New(cfg, logger)
	if err := tui.Run(game, rc, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

func playPlain(cmd *cobra.Command, cfg config.Config, fixed bool) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err = console.Run(ctx, os.Stdin, os.Stdout, console.Options{
		Config: cfg,
		Ask:    !fixed,
		Seed:   flagSeed,
		Logger: logger,
	})
	return err
}
