package wheel

import (
	"sync"
	"time"
)

// sequenceRNG returns values from a pre-set sequence, reduced mod n.
type sequenceRNG struct {
	values []int
	idx    int
}

func (r *sequenceRNG) Intn(n int) int {
	v := r.values[r.idx%len(r.values)] % n
	r.idx++
	return v
}

// fakeTimer is a scheduled callback that only fires when the test says so.
type fakeTimer struct {
	delay   time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// fakeScheduler records every AfterFunc call.
type fakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{delay: d, f: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func (s *fakeScheduler) last() *fakeTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.timers) == 0 {
		return nil
	}
	return s.timers[len(s.timers)-1]
}

// fire runs timer t unless it was stopped.
func (s *fakeScheduler) fire(t *fakeTimer) {
	if t.stopped || t.fired {
		return
	}
	t.fired = true
	t.f()
}

// fireAnyway runs the callback even if it was stopped, simulating a timer
// that had already started when Stop was called.
func (s *fakeScheduler) fireAnyway(t *fakeTimer) {
	t.fired = true
	t.f()
}

// recordingRenderer keeps every command it receives.
type recordingRenderer struct {
	mu   sync.Mutex
	cmds []RotateCommand
}

func (r *recordingRenderer) Rotate(cmd RotateCommand) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cmds = append(r.cmds, cmd)
}

func (r *recordingRenderer) all() []RotateCommand {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RotateCommand, len(r.cmds))
	copy(out, r.cmds)
	return out
}
