package board

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// New generates a board with numMines mines placed uniformly at random over
// every cell except open, then reveals open before returning.
//
// Cells adjacent to open may hold mines. A nil rng uses a time-seeded source.
func New(height, width, numMines int, open Coord, rng *rand.Rand) (*Board, error) {
	if err := checkDimensions(height, width); err != nil {
		return nil, err
	}
	if !open.In(height, width) {
		return nil, fmt.Errorf("%w: opening %v outside %dx%d grid", ErrInvalidPosition, open, height, width)
	}
	if numMines < 0 || numMines >= height*width {
		return nil, fmt.Errorf("%w: %d mines on %d cells (at most %d)",
			ErrInvalidMineCount, numMines, height*width, height*width-1)
	}
	if rng == nil {
		rng = NewRand(0)
	}

	b := newHidden(height, width)
	for _, i := range pickMines(b, numMines, b.index(open), rng) {
		b.cells[i].Content = Mine
	}
	b.numMines = numMines
	b.computeCounts()

	if err := b.Reveal(open); err != nil {
		return nil, err
	}
	return b, nil
}

// pickMines draws n distinct cell indices from every index except skip,
// by partial Fisher-Yates over the candidate list.
func pickMines(b *Board, n, skip int, rng *rand.Rand) []int {
	candidates := make([]int, 0, len(b.cells)-1)
	for i := range b.cells {
		if i != skip {
			candidates = append(candidates, i)
		}
	}
	k := len(candidates)
	for range n {
		j := rng.IntN(k)
		k--
		candidates[j], candidates[k] = candidates[k], candidates[j]
	}
	return candidates[k:]
}

// NewRand returns a PCG-backed generator for seed. Seed 0 means time-based.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
}
