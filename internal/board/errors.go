package board

import "errors"

var (
	// ErrInvalidPosition is returned for coordinates outside the grid.
	ErrInvalidPosition = errors.New("board: invalid position")

	// ErrInvalidMineCount is returned when the mine count is negative or leaves
	// no safe cell for the opening move.
	ErrInvalidMineCount = errors.New("board: invalid mine count")

	// ErrInvalidDimensions is returned when height or width is below 1.
	ErrInvalidDimensions = errors.New("board: invalid dimensions")
)
