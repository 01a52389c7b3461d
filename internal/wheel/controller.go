package wheel

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// RotateCommand is sent to the renderer. Animated commands should ease to
// Angle over DurationMs; non-animated ones snap immediately.
type RotateCommand struct {
	Angle      float64
	DurationMs int
	Animated   bool
}

// Renderer performs the visual rotation.
type Renderer interface {
	Rotate(cmd RotateCommand)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(RotateCommand)

// Rotate calls f(cmd).
func (f RendererFunc) Rotate(cmd RotateCommand) { f(cmd) }

// Options configures a Controller. Zero values pick sensible defaults.
type Options struct {
	RNG       RNG       // defaults to NewRNG(0)
	Scheduler Scheduler // defaults to RealScheduler
	Renderer  Renderer  // nil discards rotation commands
	Policy    AnglePolicy

	// OnSettled, if set, is called once per completed spin, outside the
	// controller lock.
	OnSettled func(SpinResult)

	// Events, if set, receives every Event. Sends never block.
	Events chan<- Event

	Now   func() time.Time // defaults to time.Now
	NewID func() string    // defaults to uuid.NewString
}

// Controller owns the wheel's spin state and sequences
// select → plan → rotate → settle. It is safe for concurrent use; the
// completion callback runs on the scheduler's goroutine.
type Controller struct {
	mu sync.Mutex

	names  []string
	status Status
	angle  float64
	winner string

	// gen is bumped by every spin, reset and close. A completion only
	// applies if the generation it was scheduled under is still current.
	gen     uint64
	pending Timer
	closed  bool

	rng       RNG
	scheduler Scheduler
	renderer  Renderer
	policy    AnglePolicy
	onSettled func(SpinResult)
	events    chan<- Event
	now       func() time.Time
	newID     func() string
}

// NewController creates an idle controller at angle 0 with no winner.
func NewController(names []string, opts Options) *Controller {
	c := &Controller{
		names:     cloneNames(names),
		status:    StatusIdle,
		rng:       opts.RNG,
		scheduler: opts.Scheduler,
		renderer:  opts.Renderer,
		policy:    opts.Policy,
		onSettled: opts.OnSettled,
		events:    opts.Events,
		now:       opts.Now,
		newID:     opts.NewID,
	}
	if c.rng == nil {
		c.rng = NewRNG(0)
	}
	if c.scheduler == nil {
		c.scheduler = RealScheduler{}
	}
	if c.policy == "" {
		c.policy = PolicyAbsolute
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.newID == nil {
		c.newID = uuid.NewString
	}
	return c
}

// Spin starts a spin. It does nothing when the list is empty, a spin is
// already in flight, or the controller is closed. It reports whether a
// spin was started.
func (c *Controller) Spin(cfg SpinConfig) bool {
	c.mu.Lock()
	n := len(c.names)
	if c.closed || n == 0 || !c.status.CanTransitionTo(StatusSpinning) {
		c.mu.Unlock()
		return false
	}

	snapshot := c.names
	index := Select(n, cfg.RigMode, c.rng)
	target := c.policy.Apply(c.angle, Plan(index, n, c.rng))
	durationMs := ClampDurationMs(cfg.DurationMs)

	c.gen++
	gen := c.gen
	c.winner = ""
	c.status = StatusSpinning
	c.angle = target
	id := c.newID()
	c.mu.Unlock()

	c.render(RotateCommand{Angle: target, DurationMs: durationMs, Animated: true})
	c.emit(Event{
		Kind:       EventSpinStart,
		SpinID:     id,
		Message:    fmt.Sprintf("spinning %d names for %dms", n, durationMs),
		Index:      -1,
		Angle:      target,
		DurationMs: durationMs,
		Rigged:     Rigged(n, cfg.RigMode),
		Names:      snapshot,
	})

	// The rotation command is out before the completion can be armed.
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return true
	}
	delay := time.Duration(durationMs)*time.Millisecond + SettleGrace
	c.pending = c.scheduler.AfterFunc(delay, func() {
		c.settle(gen, id, index, snapshot, cfg.RigMode)
	})
	return true
}

// settle reveals the winner of spin gen. Stale generations are ignored.
func (c *Controller) settle(gen uint64, id string, index int, snapshot []string, rigMode bool) {
	c.mu.Lock()
	if c.gen != gen || c.status != StatusSpinning {
		c.mu.Unlock()
		return
	}
	c.status = StatusIdle
	c.winner = snapshot[index]
	c.pending = nil
	result := SpinResult{
		SpinID:       id,
		WinningIndex: index,
		WinningName:  c.winner,
		FinalAngle:   c.angle,
	}
	onSettled := c.onSettled
	c.mu.Unlock()

	c.emit(Event{
		Kind:    EventSettled,
		SpinID:  id,
		Message: "winner: " + result.WinningName,
		Index:   index,
		Name:    result.WinningName,
		Angle:   result.FinalAngle,
		Rigged:  Rigged(len(snapshot), rigMode),
		Names:   snapshot,
	})
	if onSettled != nil {
		onSettled(result)
	}
}

// Reset snaps the wheel back to 0 without animation, clears the winner,
// returns to Idle and cancels any pending completion. It is valid from
// any state.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.cancelPendingLocked()
	c.gen++
	c.status = StatusIdle
	c.winner = ""
	c.angle = 0
	c.mu.Unlock()

	c.render(RotateCommand{Angle: 0, Animated: false})
	c.emit(Event{Kind: EventReset, Message: "wheel reset", Index: -1})
}

// Close cancels any pending completion. Spin is a no-op afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelPendingLocked()
	c.gen++
	c.closed = true
	c.status = StatusIdle
}

// SetNames replaces the name list. An in-flight spin keeps the list it
// started with.
func (c *Controller) SetNames(names []string) {
	c.mu.Lock()
	c.names = cloneNames(names)
	snapshot := c.names
	c.mu.Unlock()

	c.emit(Event{
		Kind:    EventNamesChanged,
		Message: fmt.Sprintf("%d names", len(snapshot)),
		Index:   -1,
		Names:   snapshot,
	})
}

// Shuffle randomises the list order and clears the winner. It is refused
// while spinning or with fewer than two names; ok reports whether the list
// changed.
func (c *Controller) Shuffle() (names []string, ok bool) {
	c.mu.Lock()
	if c.status == StatusSpinning || len(c.names) < 2 {
		names = cloneNames(c.names)
		c.mu.Unlock()
		return names, false
	}
	c.names = Shuffle(c.names, c.rng)
	c.winner = ""
	snapshot := c.names
	c.mu.Unlock()

	c.emit(Event{Kind: EventShuffled, Message: "names shuffled", Index: -1, Names: snapshot})
	return cloneNames(snapshot), true
}

// State returns a snapshot of the controller.
func (c *Controller) State() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Status:  c.status,
		Winner:  c.winner,
		Angle:   c.angle,
		Names:   cloneNames(c.names),
		Sectors: ComputeSectors(c.names),
	}
}

func (c *Controller) cancelPendingLocked() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}

func (c *Controller) render(cmd RotateCommand) {
	if c.renderer != nil {
		c.renderer.Rotate(cmd)
	}
}

func (c *Controller) emit(e Event) {
	if c.events == nil {
		return
	}
	e.Timestamp = c.now()
	select {
	case c.events <- e:
	default:
	}
}

func cloneNames(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}
