package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/minesweeper/internal/board"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse(DefaultYAML()) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v, want %+v", cfg, Default())
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "custom.yaml", "board:\n  height: 16\n  width: 30\n  mines: 99\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board != (BoardConfig{Height: 16, Width: 30, Mines: 99}) {
		t.Errorf("Board = %+v", cfg.Board)
	}
	// Unset keys keep their defaults
	if cfg.Glyphs != Default().Glyphs {
		t.Errorf("Glyphs = %+v, want defaults", cfg.Glyphs)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of missing custom path should fail")
	}

	bad := writeFile(t, t.TempDir(), "bad.yaml", "board: [not, a, map\n")
	_, err := Load(bad)
	if err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("Load() of malformed file = %v, want parse error", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := isolate(t)

	writeFile(t, ".", LocalPath, "board:\n  mines: 5\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Mines != 5 {
		t.Errorf("local config not used, mines = %d", cfg.Board.Mines)
	}

	writeFile(t, home, filepath.Join(".minesweeper", "config.yaml"), "board:\n  mines: 7\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Mines != 7 {
		t.Errorf("user config should win over local, mines = %d", cfg.Board.Mines)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"zero height", func(c *Config) { c.Board.Height = 0 }, "at least 1x1"},
		{"zero width", func(c *Config) { c.Board.Width = 0 }, "at least 1x1"},
		{"at size limit", func(c *Config) { c.Board.Height, c.Board.Width = board.MaxDimension, board.MaxDimension }, ""},
		{"too tall", func(c *Config) { c.Board.Height = board.MaxDimension + 1 }, "at most"},
		{"million square", func(c *Config) { c.Board.Height, c.Board.Width = 1000000, 1000000 }, "at most"},
		{"overflowing area", func(c *Config) { c.Board.Height, c.Board.Width = math.MaxInt, math.MaxInt }, "at most"},
		{"negative mines", func(c *Config) { c.Board.Mines = -1 }, "negative"},
		{"no safe cell", func(c *Config) { c.Board.Mines = 81 }, "no safe cell"},
		{"empty glyph", func(c *Config) { c.Glyphs.Mine = "" }, "single character"},
		{"long glyph", func(c *Config) { c.Glyphs.Hidden = "##" }, "single character"},
		{"unicode glyph", func(c *Config) { c.Glyphs.Hidden = "■" }, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			switch {
			case tc.wantErr == "" && err != nil:
				t.Errorf("Validate() = %v, want nil", err)
			case tc.wantErr != "" && (err == nil || !strings.Contains(err.Error(), tc.wantErr)):
				t.Errorf("Validate() = %v, want error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestBoardGlyphs(t *testing.T) {
	cfg := Default()
	cfg.Glyphs = GlyphConfig{Hidden: "■", Space: " ", Mine: "X"}

	got := cfg.BoardGlyphs()
	want := board.Glyphs{Hidden: '■', Space: ' ', Mine: 'X'}
	if got != want {
		t.Errorf("BoardGlyphs() = %+v, want %+v", got, want)
	}

	if got := Default().BoardGlyphs(); got != board.DefaultGlyphs {
		t.Errorf("default BoardGlyphs() = %+v, want %+v", got, board.DefaultGlyphs)
	}
}
