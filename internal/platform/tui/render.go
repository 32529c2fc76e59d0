package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/minesweeper/internal/core"
)

// Theme holds every lipgloss style the TUI draws with.
type Theme struct {
	Colors map[core.Color]lipgloss.Style
	Help   lipgloss.Style
}

// DefaultTheme returns the ANSI 256-color theme.
func DefaultTheme() Theme {
	fg := func(code string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return Theme{
		Colors: map[core.Color]lipgloss.Style{
			core.ColorDefault:    lipgloss.NewStyle(),
			core.ColorRed:        fg("1"),
			core.ColorGreen:      fg("2"),
			core.ColorYellow:     fg("3").Bold(true), // cursor brackets
			core.ColorBlue:       fg("4"),
			core.ColorMagenta:    fg("5"),
			core.ColorCyan:       fg("6"),
			core.ColorWhite:      fg("7"),
			core.ColorBrightRed:  fg("9").Bold(true),
			core.ColorBrightBlue: fg("12"),
			core.ColorGray:       fg("245"),
		},
		Help: fg("241"),
	}
}

// Style returns the style for c, falling back to the default color.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if s, ok := t.Colors[c]; ok {
		return s
	}
	return t.Colors[core.ColorDefault]
}

// Render converts a Screen buffer to styled text, one line per row.
func (t Theme) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		t.renderRow(&sb, s, y)
	}
	return sb.String()
}

// renderRow writes row y as runs of same-colored cells, one style call per run.
func (t Theme) renderRow(sb *strings.Builder, s *core.Screen, y int) {
	run := make([]rune, 0, s.Width())
	color := s.GetCell(0, y).Color
	flush := func() {
		if len(run) > 0 {
			sb.WriteString(t.Style(color).Render(string(run)))
			run = run[:0]
		}
	}

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != color {
			flush()
			color = cell.Color
		}
		run = append(run, cell.Rune)
	}
	flush()
}
