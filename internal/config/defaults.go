package config

import (
	_ "embed"
)

//go:embed defaults/minesweeper.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Height: 9,
			Width:  9,
			Mines:  10,
		},
		Glyphs: GlyphConfig{
			Hidden: "#",
			Space:  ".",
			Mine:   "*",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
