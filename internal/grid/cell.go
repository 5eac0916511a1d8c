package grid

// Status is the visible state of a cell.
type Status int

const (
	// Concealed is the initial state of every cell.
	Concealed Status = iota
	// Revealed cells are open; this state is terminal.
	Revealed
	// Flagged cells are marked by the player and cannot be revealed.
	Flagged
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case Concealed:
		return "concealed"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return "unknown"
	}
}

// Cell is one square of the board.
type Cell struct {
	Mine     bool   // Whether the cell holds a mine
	Adjacent int    // Mines among the neighbors; 0 and meaningless before placement
	Status   Status // Concealed, Revealed or Flagged
}
