package grid

import (
	"errors"
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// ErrInvalidSchedule is returned when a schedule's ranks are negative or
// not strictly increasing.
var ErrInvalidSchedule = errors.New("schedule ranks must be non-negative and strictly increasing")

// Schedule lists, in increasing order, the ranks at which mines land.
// A rank counts only cells outside the first click's safe zone, so the
// same schedule yields different indices for different first clicks.
type Schedule struct {
	ranks []int
}

// NewSchedule builds a schedule from explicit ranks.
func NewSchedule(ranks ...int) (Schedule, error) {
	for i, r := range ranks {
		if r < 0 || (i > 0 && r <= ranks[i-1]) {
			return Schedule{}, ErrInvalidSchedule
		}
	}
	out := make([]int, len(ranks))
	copy(out, ranks)
	return Schedule{ranks: out}, nil
}

// Len returns the number of mines the schedule places.
func (s Schedule) Len() int {
	return len(s.ranks)
}

// Ranks returns a copy of the scheduled ranks.
func (s Schedule) Ranks() []int {
	out := make([]int, len(s.ranks))
	copy(out, s.ranks)
	return out
}

// Distribute draws a schedule of mines ranks out of 0..pool-1.
//
// Each rank is kept with probability remaining/(pool-rank), so the result
// is a uniformly chosen increasing sequence of exactly mines ranks when
// mines <= pool, and every rank when it is not.
func Distribute(rng *rand.Rand, pool, mines int) Schedule {
	ranks := make([]int, 0, max(mines, 0))
	remaining := mines
	for rank := 0; rank < pool && remaining > 0; rank++ {
		if rng.Float64() < float64(remaining)/float64(pool-rank) {
			ranks = append(ranks, rank)
			remaining--
		}
	}
	return Schedule{ranks: ranks}
}

// PlaceMines realizes the schedule on b, keeping first and its neighbors
// free of mines, then recomputes every adjacency count. It returns the
// number of mines placed, which is short of s.Len() only when the schedule
// holds ranks past the end of the candidate cells.
func PlaceMines(b *Board, first int, s Schedule) int {
	safe := mapset.New[int]()
	safe.Put(first)
	for _, n := range Neighbors(first, b.Size) {
		safe.Put(n)
	}

	placed, rank := 0, 0
	for j := 0; j < len(b.cells) && placed < len(s.ranks); j++ {
		if safe.Has(j) {
			continue
		}
		if rank == s.ranks[placed] {
			b.cells[j].Mine = true
			placed++
		}
		rank++
	}

	b.Recount()
	return placed
}
