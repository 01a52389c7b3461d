package wheel

import "math"

// Angles are in degrees. 0° points along +x and angles grow clockwise in
// screen space, so -90° is the top of the wheel.
const (
	// PointerAngle is where the fixed pointer sits.
	PointerAngle = -90.0

	// StartOffset is where sector 0 begins: directly under the pointer.
	StartOffset = -90.0
)

// Palette is cycled by sector index.
var Palette = []string{"#1e3a8a", "#ef4444", "#f59e0b", "#16a34a"}

// Sector is the angular slice assigned to one name.
type Sector struct {
	Index int
	Start float64
	End   float64
	Mid   float64
}

// Span returns the angular width of the sector.
func (s Sector) Span() float64 {
	return s.End - s.Start
}

// Contains reports whether angle a (any revolution) falls inside the
// sector. Start is inclusive, End exclusive.
func (s Sector) Contains(a float64) bool {
	d := normalizeDegrees(a - s.Start)
	return d < s.Span()
}

// SegmentSpan returns 360/n. An empty wheel gets a 360° placeholder span
// with nothing selectable on it.
func SegmentSpan(n int) float64 {
	if n <= 0 {
		return 360
	}
	return 360 / float64(n)
}

// SectorAt computes sector i of an n-sector wheel.
func SectorAt(i, n int) Sector {
	seg := SegmentSpan(n)
	start := float64(i)*seg + StartOffset
	return Sector{
		Index: i,
		Start: start,
		End:   float64(i+1)*seg + StartOffset,
		Mid:   start + seg/2,
	}
}

// ComputeSectors lays out one sector per name.
func ComputeSectors(names []string) []Sector {
	n := len(names)
	sectors := make([]Sector, n)
	for i := range sectors {
		sectors[i] = SectorAt(i, n)
	}
	return sectors
}

// SectorUnderPointer returns the index of the sector sitting under the
// pointer once the wheel has been rotated by angle degrees, or -1 for an
// empty wheel.
func SectorUnderPointer(angle float64, n int) int {
	return SectorAtScreenAngle(PointerAngle, angle, n)
}

// SectorAtScreenAngle returns the index of the sector drawn at screen angle
// screen (degrees, clockwise from 3 o'clock) when the wheel is rotated by
// rotation. It returns -1 for an empty wheel.
func SectorAtScreenAngle(screen, rotation float64, n int) int {
	if n <= 0 {
		return -1
	}
	// Undo the rotation to find the wheel-local angle.
	local := normalizeDegrees(screen - rotation - StartOffset)
	i := int(local / SegmentSpan(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// ColorFor returns the palette colour for sector i.
func ColorFor(i int) string {
	return Palette[i%len(Palette)]
}

// LabelScale returns the label size for an n-name wheel: 14 shrinking by one
// per name past six, never below 6.
func LabelScale(n int) int {
	return max(6, 14-max(0, n-6))
}

// normalizeDegrees maps a into [0, 360).
func normalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}
