package console

import (
	"errors"
	"strconv"
	"strings"

	"github.com/vovakirdan/minesweeper/internal/board"
)

// ErrMalformedCoord is returned when a line is not a "row col" pair.
var ErrMalformedCoord = errors.New("console: expected a row and a column")

// ParseCoord parses "r c", "r,c" or "r, c" into a coordinate.
// Bounds are not checked.
func ParseCoord(s string) (board.Coord, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(fields) != 2 || strings.Count(s, ",") > 1 {
		return board.Coord{}, ErrMalformedCoord
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return board.Coord{}, ErrMalformedCoord
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return board.Coord{}, ErrMalformedCoord
	}
	return board.C(row, col), nil
}
