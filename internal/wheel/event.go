package wheel

import "time"

// EventKind identifies the type of a controller event.
type EventKind int

const (
	EventSpinStart    EventKind = iota // Rotation command issued
	EventSettled                       // Spin finished, winner revealed
	EventReset                         // Wheel snapped back to zero
	EventNamesChanged                  // Name list replaced
	EventShuffled                      // Name list shuffled
)

// String returns the lowercase name of the kind.
func (k EventKind) String() string {
	switch k {
	case EventSpinStart:
		return "spin_start"
	case EventSettled:
		return "settled"
	case EventReset:
		return "reset"
	case EventNamesChanged:
		return "names_changed"
	case EventShuffled:
		return "shuffled"
	default:
		return "unknown"
	}
}

// Event is emitted by the controller on every state change. When
// Controller events are enabled they are sent on the channel without
// blocking; a full channel drops the event.
type Event struct {
	Kind      EventKind `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message,omitempty"`

	// Spin fields
	SpinID     string  `json:"spin_id,omitempty"`
	Index      int     `json:"index"`
	Name       string  `json:"name,omitempty"`
	Angle      float64 `json:"angle"`
	DurationMs int     `json:"duration_ms,omitempty"`
	Rigged     bool    `json:"rigged,omitempty"`

	// Names is the list in effect: the spin snapshot for spin events, the
	// new list for names_changed and shuffled.
	Names []string `json:"names,omitempty"`
}
