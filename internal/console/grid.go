package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/minesweeper/internal/board"
)

// Grid formats the board as text with row and column indices.
//
//	  0 1 2
//	0 # 1 .
//	1 # 1 .
func Grid(b *board.Board, glyphs board.Glyphs, revealAll bool) string {
	lw := len(strconv.Itoa(max(b.Height(), b.Width()) - 1))

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", lw))
	for c := range b.Width() {
		fmt.Fprintf(&sb, " %*d", lw, c)
	}
	sb.WriteByte('\n')

	for r := range b.Height() {
		fmt.Fprintf(&sb, "%*d", lw, r)
		for _, cell := range b.Row(r) {
			fmt.Fprintf(&sb, " %*c", lw, glyphs.Rune(cell, revealAll))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
