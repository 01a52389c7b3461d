// Package store persists wheel events to a JSONL session log and provides
// indexed read-back of past spins. One store instance is created per wheel
// invocation in cmd/wheel/wiring.go.
package store

import (
	"errors"
	"time"

	"github.com/LISSConsulting/LISSTech.WheelKing/internal/wheel"
)

// ErrNotFound is returned when a spin ID is not in the index.
var ErrNotFound = errors.New("store: not found")

// Writer persists wheel events to durable storage.
type Writer interface {
	Append(e wheel.Event) error
	Close() error
}

// Reader retrieves past spin data from storage.
type Reader interface {
	Spins() ([]SpinSummary, error)
	SpinLog(id string) ([]wheel.Event, error)
	Tally() ([]NameCount, error)
	SessionSummary() (SessionSummary, error)
}

// Store combines Writer and Reader into a single session-scoped handle.
type Store interface {
	Writer
	Reader
}

// SpinSummary summarises one settled spin.
type SpinSummary struct {
	SpinID     string
	Winner     string
	Index      int
	Names      int // list size at spin time
	Rigged     bool
	DurationMs int
	Angle      float64
	StartAt    time.Time
	EndAt      time.Time
}

// NameCount is one row of a win tally.
type NameCount struct {
	Name string
	Wins int
}

// SessionSummary summarises the current session.
type SessionSummary struct {
	SessionID  string
	StartedAt  time.Time
	Spins      int
	Rigged     int
	LastWinner string
}
