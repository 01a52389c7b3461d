package wheel

// Status is the spin lifecycle state.
type Status int

const (
	StatusIdle     Status = iota // No spin in flight
	StatusSpinning               // One spin in flight, winner hidden
)

// validTransitions defines the allowed Status transitions. Spinning never
// re-enters itself: a second spin while one is in flight is rejected.
var validTransitions = map[Status][]Status{
	StatusIdle:     {StatusSpinning, StatusIdle},
	StatusSpinning: {StatusIdle},
}

// CanTransitionTo reports whether moving from s to next is valid.
func (s Status) CanTransitionTo(next Status) bool {
	for _, valid := range validTransitions[s] {
		if valid == next {
			return true
		}
	}
	return false
}

// Label returns a short uppercase label for the status.
func (s Status) Label() string {
	switch s {
	case StatusIdle:
		return "IDLE"
	case StatusSpinning:
		return "SPINNING"
	default:
		return "UNKNOWN"
	}
}

// Symbol returns a single-character symbol for the status.
func (s Status) Symbol() string {
	switch s {
	case StatusIdle:
		return "✓"
	case StatusSpinning:
		return "⟳"
	default:
		return "?"
	}
}

// SpinResult is produced when a spin settles.
type SpinResult struct {
	SpinID       string
	WinningIndex int
	WinningName  string
	FinalAngle   float64
}

// Snapshot is a read-only view of the controller.
type Snapshot struct {
	Status  Status
	Winner  string
	Angle   float64 // last committed absolute rotation
	Names   []string
	Sectors []Sector
}

// Spinning reports whether a spin is in flight.
func (s Snapshot) Spinning() bool {
	return s.Status == StatusSpinning
}

// CanSpin reports whether a spin request would be accepted.
func (s Snapshot) CanSpin() bool {
	return s.Status == StatusIdle && len(s.Names) > 0
}
