// Package game provides the minesweeper state machine that turns player
// events into board changes and lifecycle transitions.
package game

// State represents the lifecycle state of a game.
type State int

const (
	// StateIdle is the initial state; no mines are on the board yet.
	StateIdle State = iota
	// StatePlaying is entered on the first reveal, once mines are placed.
	StatePlaying
	// StateWon is reached when a win check succeeds.
	StateWon
	// StateLost is reached when a mine is revealed.
	StateLost
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Over reports whether the game has ended.
func (s State) Over() bool {
	return s == StateWon || s == StateLost
}
