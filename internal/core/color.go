package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightBlue
	ColorGray
)

// NumberColors are the classic colors for neighbour counts 1..8, indexed by count.
var NumberColors = [9]Color{
	ColorDefault,
	ColorBrightBlue,
	ColorGreen,
	ColorRed,
	ColorBlue,
	ColorMagenta,
	ColorCyan,
	ColorWhite,
	ColorGray,
}
