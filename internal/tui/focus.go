package tui

// FocusTarget identifies which panel currently holds keyboard focus.
type FocusTarget int

const (
	FocusNames FocusTarget = iota // Left sidebar: name list editor
	FocusSpins                    // Left sidebar: settled spins
	FocusWheel                    // Right top: the wheel
	FocusLog                      // Right bottom: events and tally
)

const focusCount = 4

// Next returns the next focus target in forward tab order.
func (f FocusTarget) Next() FocusTarget {
	return (f + 1) % focusCount
}

// Prev returns the previous focus target in reverse tab order.
func (f FocusTarget) Prev() FocusTarget {
	return (f + focusCount - 1) % focusCount
}

// String returns the human-readable name of the focus target.
func (f FocusTarget) String() string {
	switch f {
	case FocusNames:
		return "names"
	case FocusSpins:
		return "spins"
	case FocusWheel:
		return "wheel"
	case FocusLog:
		return "log"
	default:
		return "unknown"
	}
}
