package grid

// IsWon reports whether every mine is flagged and every other cell is
// revealed. Any concealed cell means the game is not won.
func (b *Board) IsWon() bool {
	for _, c := range b.cells {
		switch {
		case c.Status == Concealed:
			return false
		case c.Mine && c.Status != Flagged:
			return false
		case !c.Mine && c.Status != Revealed:
			return false
		}
	}
	return true
}
