package wheel

import (
	"strconv"
	"strings"
	"time"
)

// Spin duration bounds in milliseconds.
const (
	DefaultDurationMs = 5000
	MinDurationMs     = 1000
	MaxDurationMs     = 15000
)

// SettleGrace is added to the animation duration before the winner is
// revealed, so the visual transition has finished first.
const SettleGrace = 50 * time.Millisecond

// SpinConfig carries the per-spin options.
type SpinConfig struct {
	RigMode    bool
	DurationMs int
}

// DefaultSpinConfig matches the original wheel: rig mode on, five seconds.
func DefaultSpinConfig() SpinConfig {
	return SpinConfig{RigMode: true, DurationMs: DefaultDurationMs}
}

// Duration returns the animation length, falling back to the default when
// DurationMs is out of range.
func (c SpinConfig) Duration() time.Duration {
	return time.Duration(ClampDurationMs(c.DurationMs)) * time.Millisecond
}

// ClampDurationMs returns ms if it lies in [MinDurationMs, MaxDurationMs],
// otherwise DefaultDurationMs.
func ClampDurationMs(ms int) int {
	if ms < MinDurationMs || ms > MaxDurationMs {
		return DefaultDurationMs
	}
	return ms
}

// ParseDurationMs reads a duration typed by a user. Empty, unparseable or
// out-of-range input yields DefaultDurationMs.
func ParseDurationMs(s string) int {
	ms, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return DefaultDurationMs
	}
	return ClampDurationMs(ms)
}
