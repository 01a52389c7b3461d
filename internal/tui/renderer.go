package tui

import "github.com/LISSConsulting/LISSTech.WheelKing/internal/wheel"

// Wheel is the engine surface the TUI drives. *wheel.Controller
// implements it.
type Wheel interface {
	Spin(cfg wheel.SpinConfig) bool
	Reset()
	Shuffle() ([]string, bool)
	SetNames(names []string)
	State() wheel.Snapshot
}

// Renderer implements wheel.Renderer by queueing rotation commands for
// the bubbletea program. Pass it to wheel.Options and the same value to New.
type Renderer struct {
	ch chan wheel.RotateCommand
}

// NewRenderer returns a Renderer with room for buffer pending commands.
func NewRenderer(buffer int) *Renderer {
	if buffer < 1 {
		buffer = 1
	}
	return &Renderer{ch: make(chan wheel.RotateCommand, buffer)}
}

// Rotate queues cmd. When the queue is full the oldest command is dropped:
// only the latest rotation matters to the display.
func (r *Renderer) Rotate(cmd wheel.RotateCommand) {
	for {
		select {
		case r.ch <- cmd:
			return
		default:
		}
		select {
		case <-r.ch:
		default:
		}
	}
}

// Commands returns the receive side of the queue.
func (r *Renderer) Commands() <-chan wheel.RotateCommand {
	return r.ch
}
