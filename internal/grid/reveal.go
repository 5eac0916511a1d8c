package grid

import "github.com/gammazero/deque"

// Reveal opens the cell at i regardless of its contents. Legality is the
// caller's concern.
func (b *Board) Reveal(i int) {
	b.cells[i].Status = Revealed
}

// FloodReveal opens the neighborhood of a revealed origin.
//
// Every concealed neighbor of the origin is revealed. Neighbors that are
// empty themselves are expanded in turn, so an open region is exposed up
// to its numbered border without cascading past it. Flagged cells and
// mines are never touched. It returns the number of cells newly revealed.
func (b *Board) FloodReveal(origin int) int {
	o := b.cells[origin]
	if o.Status != Revealed || o.Mine {
		return 0
	}

	var queue deque.Deque[int]
	queue.PushBack(origin)

	revealed := 0
	for queue.Len() > 0 {
		i := queue.PopFront()
		for _, n := range Neighbors(i, b.Size) {
			c := &b.cells[n]
			if c.Status != Concealed || c.Mine {
				continue
			}
			c.Status = Revealed
			revealed++
			if c.Adjacent == 0 {
				queue.PushBack(n)
			}
		}
	}
	return revealed
}
