package tui

import (
	"time"

	"github.com/LISSConsulting/LISSTech.WheelKing/internal/store"
	"github.com/LISSConsulting/LISSTech.WheelKing/internal/wheel"
)

// wheelEventMsg wraps a controller Event for the root model.
type wheelEventMsg wheel.Event

// eventsClosedMsg signals the event channel closed.
type eventsClosedMsg struct{}

// rotateMsg carries a rotation command from the controller.
type rotateMsg wheel.RotateCommand

// frameMsg drives the spin animation.
type frameMsg time.Time

// tickMsg is sent every second for the clock.
type tickMsg time.Time

// spinLogLoadedMsg carries the stored events of one spin.
type spinLogLoadedMsg struct {
	ID      string
	Events  []wheel.Event
	Summary store.SpinSummary
	Err     error
}
