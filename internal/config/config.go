// Package config provides YAML-based configuration loading for the game:
// board dimensions, mine count and display glyphs.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/minesweeper/internal/board"
)

// Config is the top-level configuration file.
type Config struct {
	Board  BoardConfig `yaml:"board"`
	Glyphs GlyphConfig `yaml:"glyphs"`
}

// BoardConfig defines the grid and mine count.
type BoardConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
	Mines  int `yaml:"mines"`
}

// GlyphConfig defines the single-character glyphs used to draw cells.
// Numbers are always drawn as digits.
type GlyphConfig struct {
	Hidden string `yaml:"hidden"`
	Space  string `yaml:"space"`
	Mine   string `yaml:"mine"`
}

// Validate checks that the configuration can produce a board.
// The upper bound on mines is left to board.New, which knows the opener rule.
func (c Config) Validate() error {
	if c.Board.Height < 1 || c.Board.Width < 1 {
		return fmt.Errorf("config: board must be at least 1x1, got %dx%d", c.Board.Height, c.Board.Width)
	}
	if c.Board.Height > board.MaxDimension || c.Board.Width > board.MaxDimension {
		return fmt.Errorf("config: board must be at most %dx%d, got %dx%d",
			board.MaxDimension, board.MaxDimension, c.Board.Height, c.Board.Width)
	}
	if c.Board.Mines < 0 {
		return fmt.Errorf("config: mines must not be negative, got %d", c.Board.Mines)
	}
	if c.Board.Mines >= c.Board.Height*c.Board.Width {
		return fmt.Errorf("config: %d mines leave no safe cell on a %dx%d board",
			c.Board.Mines, c.Board.Height, c.Board.Width)
	}
	for name, g := range map[string]string{
		"hidden": c.Glyphs.Hidden,
		"space":  c.Glyphs.Space,
		"mine":   c.Glyphs.Mine,
	} {
		if utf8.RuneCountInString(g) != 1 {
			return fmt.Errorf("config: glyph %q must be a single character, got %q", name, g)
		}
	}
	return nil
}

// BoardGlyphs converts the glyph strings to board.Glyphs.
// Call Validate first; empty strings fall back to the board defaults.
func (c Config) BoardGlyphs() board.Glyphs {
	g := board.DefaultGlyphs
	if r, _ := utf8.DecodeRuneInString(c.Glyphs.Hidden); r != utf8.RuneError {
		g.Hidden = r
	}
	if r, _ := utf8.DecodeRuneInString(c.Glyphs.Space); r != utf8.RuneError {
		g.Space = r
	}
	if r, _ := utf8.DecodeRuneInString(c.Glyphs.Mine); r != utf8.RuneError {
		g.Mine = r
	}
	return g
}
