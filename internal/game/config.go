package game

import (
	"fmt"

	"github.com/samdwyer/minesweeper/internal/grid"
)

// Config holds game configuration options.
type Config struct {
	// Size is the number of rows and columns of the square board.
	Size int
	// Mines is the number of mines to place on the first reveal.
	Mines int
	// Seed for random number generation. Used for reproducible mine layouts.
	// A seed of 0 means a random seed will be generated.
	Seed int64
}

// MaxSize is the largest supported board dimension. It keeps Size*Size well
// inside int on every platform.
const MaxSize = 1 << 12

// MaxMines returns the largest mine count a board of the given size can
// hold while keeping any first click and its neighbors clear.
func MaxMines(size int) int {
	return grid.CandidatePool(size)
}

// Validate checks that the board size and mine count are compatible.
func (c Config) Validate() error {
	if c.Size < 1 || c.Size > MaxSize {
		return fmt.Errorf("%w: size %d not in 1..%d", ErrInvalidConfiguration, c.Size, MaxSize)
	}
	if c.Mines < 0 || c.Mines > MaxMines(c.Size) {
		return fmt.Errorf("%w: %d mines on a %dx%d board, allowed 0..%d",
			ErrInvalidConfiguration, c.Mines, c.Size, c.Size, MaxMines(c.Size))
	}
	return nil
}
