package wheel

import "time"

// Timer is the cancellation handle for a scheduled completion.
// *time.Timer satisfies it.
type Timer interface {
	// Stop prevents the callback from firing. It returns false if the
	// callback already fired or the timer was already stopped.
	Stop() bool
}

// Scheduler runs a callback once after a delay. Implementations must not
// call f from inside AfterFunc.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealScheduler schedules on the runtime timer heap via time.AfterFunc.
type RealScheduler struct{}

// AfterFunc calls f in its own goroutine after d.
func (RealScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
