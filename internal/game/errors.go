package game

import "errors"

var (
	// ErrInvalidIndex is returned when an event addresses a cell outside the board.
	ErrInvalidIndex = errors.New("cell index out of range")
	// ErrInvalidConfiguration is returned when a game cannot be built from its configuration.
	ErrInvalidConfiguration = errors.New("invalid game configuration")
)
