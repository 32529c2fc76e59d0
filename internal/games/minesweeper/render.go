package minesweeper

import (
	"fmt"

	"github.com/vovakirdan/minesweeper/internal/board"
	"github.com/vovakirdan/minesweeper/internal/core"
)

const (
	cellWidth    = 3 // " x " per cell, "[x]" under the cursor
	hudHeight    = 2
	bannerHeight = 3
)

// minScreenSize returns the smallest screen that fits the board, HUD and border.
func (g *Game) minScreenSize() (int, int) {
	w := g.params.Width*cellWidth + 2
	h := hudHeight + g.params.Height + 2 + bannerHeight
	return max(w, 24), h
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := g.params.Width*cellWidth + 2
	boardH := g.params.Height + 2
	frame := dst.Bounds().Centered(boardW, boardH)
	frame.Y = hudHeight

	g.renderHUD(dst)
	dst.DrawBox(frame)
	g.renderBoard(dst, frame.X+1, frame.Y+1)
	g.renderOverlay(dst, frame)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.minScreenSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minW, minH))
}

// renderHUD draws the title and counters above the board.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, "MINESWEEPER")

	st := g.State()
	info := fmt.Sprintf("Mines: %d  Safe left: %d  Moves: %d", g.params.Mines, st.Remaining, st.Moves)
	dst.DrawTextCentered(1, info)
}

// renderBoard draws every cell, revealing all of them once the game has ended.
func (g *Game) renderBoard(dst *core.Screen, originX, originY int) {
	revealAll := g.status != board.InProgress

	for r := range g.params.Height {
		for c := range g.params.Width {
			at := board.C(r, c)
			cell := board.Cell{State: board.Hidden}
			if g.board != nil {
				cell, _ = g.board.At(at)
			}

			x := originX + c*cellWidth
			y := originY + r
			dst.SetCell(x+1, y, core.Cell{
				Rune:  g.glyphs.Rune(cell, revealAll),
				Color: g.cellColor(cell, revealAll),
			})
			if at == g.cursor && !revealAll {
				dst.SetCell(x, y, core.Cell{Rune: '[', Color: core.ColorYellow})
				dst.SetCell(x+2, y, core.Cell{Rune: ']', Color: core.ColorYellow})
			}
		}
	}
}

func (g *Game) cellColor(cell board.Cell, revealAll bool) core.Color {
	switch {
	case cell.State != board.Revealed && !revealAll:
		return core.ColorGray
	case cell.Content.IsMine() && cell.IsRevealed():
		return core.ColorBrightRed // the one that went off
	case cell.Content.IsMine():
		return core.ColorRed
	case cell.Content.IsSpace():
		return core.ColorDefault
	default:
		return core.NumberColors[cell.Content.Number()]
	}
}

// renderOverlay draws the end-of-game banner below the board.
func (g *Game) renderOverlay(dst *core.Screen, frame core.Rect) {
	var lines []string
	switch g.status {
	case board.Won:
		lines = []string{"YOU WIN!", fmt.Sprintf("Cleared in %d moves", g.moves)}
	case board.Lost:
		lines = []string{"BOOM! GAME OVER", fmt.Sprintf("Hit a mine at row %d, col %d", g.cursor.Row, g.cursor.Col)}
	default:
		return
	}
	lines = append(lines, "Press R to play again")

	y := frame.Bottom()
	for i, line := range lines {
		dst.DrawTextCentered(y+i, line)
	}
}
