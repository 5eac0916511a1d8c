// Package grid provides the minefield model and the rules that act on it:
// adjacency geometry, mine placement, flood reveal and the win predicate.
package grid

// Neighbors returns the indices adjacent to cell i on a size×size board,
// in ascending order.
//
// A neighbor is any cell whose row and column both differ from i's by at
// most one, so candidates above the top row, below the bottom row, or
// wrapping around the left or right edge are never returned. Corners have
// three neighbors, edges five and interior cells eight.
func Neighbors(i, size int) []int {
	row, col := i/size, i%size
	out := make([]int, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= size {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			c := col + dc
			if c < 0 || c >= size || (dr == 0 && dc == 0) {
				continue
			}
			out = append(out, r*size+c)
		}
	}
	return out
}

// MaxNeighbors returns the size of the largest neighborhood on a
// size×size board.
func MaxNeighbors(size int) int {
	switch {
	case size <= 1:
		return 0
	case size == 2:
		return 3
	default:
		return 8
	}
}

// CandidatePool returns the number of cells still eligible for a mine
// after the worst-case first click (one with MaxNeighbors neighbors) has
// been excluded together with its neighborhood.
func CandidatePool(size int) int {
	pool := size*size - 1 - MaxNeighbors(size)
	if pool < 0 {
		return 0
	}
	return pool
}

// CandidatesFor returns the number of cells eligible for a mine once first
// and its neighbors are excluded. It is never below CandidatePool(size).
func CandidatesFor(first, size int) int {
	return size*size - 1 - len(Neighbors(first, size))
}
