package wheel

import (
	"fmt"
	"math"
)

// Extra full revolutions added to every spin, inclusive bounds.
const (
	MinExtraSpins = 8
	MaxExtraSpins = 11
)

// AnglePolicy decides how a planned target relates to the angle the wheel
// already sits at.
type AnglePolicy string

const (
	// PolicyAbsolute applies each planned target as-is, from a zero
	// baseline. Consecutive targets may be smaller than the previous one,
	// so a renderer animating numerically will run the wheel backwards.
	PolicyAbsolute AnglePolicy = "absolute"

	// PolicyForward lifts each target onto the revolution after the current
	// angle so the wheel always keeps turning the same way.
	PolicyForward AnglePolicy = "forward"
)

// ParseAnglePolicy accepts "absolute", "forward" or "" (absolute).
func ParseAnglePolicy(s string) (AnglePolicy, error) {
	switch AnglePolicy(s) {
	case "", PolicyAbsolute:
		return PolicyAbsolute, nil
	case PolicyForward:
		return PolicyForward, nil
	default:
		return "", fmt.Errorf("wheel: unknown angle policy %q (want %q or %q)", s, PolicyAbsolute, PolicyForward)
	}
}

// BaseAlignment returns the rotation that brings the midpoint of sector
// index on an n-sector wheel under the pointer.
func BaseAlignment(index, n int) float64 {
	offset := SectorAt(index, n).Mid - PointerAngle
	return -offset
}

// ExtraSpins draws the number of decorative full turns.
func ExtraSpins(rng RNG) int {
	return MinExtraSpins + rng.Intn(MaxExtraSpins-MinExtraSpins+1)
}

// Plan returns the absolute target angle for landing on index. It does not
// look at the wheel's current angle.
func Plan(index, n int, rng RNG) float64 {
	return BaseAlignment(index, n) + float64(ExtraSpins(rng))*360
}

// Apply resolves a planned target against the current committed angle.
func (p AnglePolicy) Apply(current, target float64) float64 {
	if p != PolicyForward {
		return target
	}
	return math.Floor(current/360)*360 + target
}
