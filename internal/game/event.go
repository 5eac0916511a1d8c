package game

// EventKind identifies the action carried by an Event.
type EventKind int

const (
	// EventRevealCell opens a cell.
	EventRevealCell EventKind = iota
	// EventFlagCell toggles the flag on a cell.
	EventFlagCell
	// EventCheckWin evaluates the win condition.
	EventCheckWin
	// EventReset starts over after a finished game.
	EventReset
)

// String returns a human-readable event name.
func (k EventKind) String() string {
	switch k {
	case EventRevealCell:
		return "reveal_cell"
	case EventFlagCell:
		return "flag_cell"
	case EventCheckWin:
		return "check_win"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is a player action dispatched to a Machine.
type Event struct {
	Kind  EventKind
	Index int // Target cell; only meaningful for reveal and flag
}

// RevealCell returns an event that reveals cell i.
func RevealCell(i int) Event {
	return Event{Kind: EventRevealCell, Index: i}
}

// FlagCell returns an event that toggles the flag on cell i.
func FlagCell(i int) Event {
	return Event{Kind: EventFlagCell, Index: i}
}

// CheckWin returns an event that evaluates the win condition.
func CheckWin() Event {
	return Event{Kind: EventCheckWin}
}

// Reset returns an event that clears a finished game.
func Reset() Event {
	return Event{Kind: EventReset}
}

// targetsCell reports whether the event addresses a cell.
func (e Event) targetsCell() bool {
	return e.Kind == EventRevealCell || e.Kind == EventFlagCell
}
