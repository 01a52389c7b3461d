package tui

import (
	"math"
	"time"
)

// Easing control points for the spin curve: a fast start that settles
// gently onto the target.
const (
	easeX1, easeY1 = 0.2, 0.9
	easeX2, easeY2 = 0.2, 1.0
)

// frameInterval is the animation redraw period.
const frameInterval = time.Second / 30

// Animation eases the visual wheel angle from From to To over Duration.
type Animation struct {
	From     float64
	To       float64
	Start    time.Time
	Duration time.Duration
}

// Progress returns the linear time fraction elapsed at now, in [0, 1].
func (a Animation) Progress(now time.Time) float64 {
	if a.Duration <= 0 {
		return 1
	}
	p := float64(now.Sub(a.Start)) / float64(a.Duration)
	return math.Max(0, math.Min(1, p))
}

// Angle returns the eased angle at now.
func (a Animation) Angle(now time.Time) float64 {
	p := a.Progress(now)
	if p >= 1 {
		return a.To
	}
	return a.From + (a.To-a.From)*Ease(p)
}

// Done reports whether the animation has reached its target at now.
func (a Animation) Done(now time.Time) bool {
	return a.Progress(now) >= 1
}

// Ease maps a time fraction x in [0, 1] to a progress fraction along the
// cubic Bézier curve through (0,0), (x1,y1), (x2,y2), (1,1).
func Ease(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return bezier(solveT(x), easeY1, easeY2)
}

// bezier evaluates one coordinate of the curve at parameter t.
func bezier(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}

// bezierSlope is d/dt of bezier.
func bezierSlope(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
}

// solveT finds t with bezier(t, x1, x2) == x: Newton first, bisection when
// the slope flattens out.
func solveT(x float64) float64 {
	t := x
	for i := 0; i < 8; i++ {
		d := bezier(t, easeX1, easeX2) - x
		if math.Abs(d) < 1e-7 {
			return t
		}
		s := bezierSlope(t, easeX1, easeX2)
		if math.Abs(s) < 1e-6 {
			break
		}
		t -= d / s
	}
	lo, hi := 0.0, 1.0
	t = x
	for i := 0; i < 50; i++ {
		v := bezier(t, easeX1, easeX2)
		if math.Abs(v-x) < 1e-7 {
			break
		}
		if v < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return t
}
