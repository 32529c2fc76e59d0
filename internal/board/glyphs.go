package board

// Glyphs maps cells to display runes.
type Glyphs struct {
	Hidden rune
	Space  rune
	Mine   rune
}

// DefaultGlyphs are used when no configuration overrides them.
var DefaultGlyphs = Glyphs{Hidden: '#', Space: '.', Mine: '*'}

// Rune returns the display rune for cell. With revealAll set, hidden cells are
// shown by their content; this is the end-of-game view for both wins and losses.
func (g Glyphs) Rune(cell Cell, revealAll bool) rune {
	if cell.State != Revealed && !revealAll {
		return g.Hidden
	}
	switch {
	case cell.Content.IsMine():
		return g.Mine
	case cell.Content.IsSpace():
		return g.Space
	default:
		return rune('0' + cell.Content.Number())
	}
}
