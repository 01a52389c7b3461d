package wheel

import (
	"math"
	"testing"
)

const eps = 1e-6

func TestComputeSectors_Partition(t *testing.T) {
	for n := 1; n <= 64; n++ {
		names := make([]string, n)
		sectors := ComputeSectors(names)
		if len(sectors) != n {
			t.Fatalf("n=%d: got %d sectors", n, len(sectors))
		}

		var total float64
		for i, s := range sectors {
			if s.Index != i {
				t.Errorf("n=%d: sector %d has Index %d", n, i, s.Index)
			}
			if math.Abs(s.Span()-360/float64(n)) > eps {
				t.Errorf("n=%d: sector %d span %v", n, i, s.Span())
			}
			if math.Abs(s.Mid-(s.Start+s.Span()/2)) > eps {
				t.Errorf("n=%d: sector %d mid %v not centred in [%v,%v)", n, i, s.Mid, s.Start, s.End)
			}
			if i > 0 && sectors[i-1].End != s.Start {
				t.Errorf("n=%d: gap/overlap between %d and %d: %v vs %v", n, i-1, i, sectors[i-1].End, s.Start)
			}
			total += s.Span()
		}
		if math.Abs(total-360) > eps {
			t.Errorf("n=%d: spans sum to %v, want 360", n, total)
		}
		if sectors[0].Start != StartOffset {
			t.Errorf("n=%d: sector 0 starts at %v, want %v", n, sectors[0].Start, StartOffset)
		}
		if math.Abs(sectors[n-1].End-(StartOffset+360)) > eps {
			t.Errorf("n=%d: last sector ends at %v", n, sectors[n-1].End)
		}
	}
}

func TestComputeSectors_Empty(t *testing.T) {
	if got := ComputeSectors(nil); len(got) != 0 {
		t.Errorf("ComputeSectors(nil) = %v, want empty", got)
	}
	if got := SegmentSpan(0); got != 360 {
		t.Errorf("SegmentSpan(0) = %v, want 360 placeholder", got)
	}
}

func TestSectorAt_FourNames(t *testing.T) {
	tests := []struct {
		i               int
		start, end, mid float64
	}{
		{0, -90, 0, -45},
		{1, 0, 90, 45},
		{2, 90, 180, 135},
		{3, 180, 270, 225},
	}
	for _, tt := range tests {
		s := SectorAt(tt.i, 4)
		if s.Start != tt.start || s.End != tt.end || s.Mid != tt.mid {
			t.Errorf("SectorAt(%d,4) = %+v, want start=%v end=%v mid=%v", tt.i, s, tt.start, tt.end, tt.mid)
		}
	}
}

func TestSector_Contains(t *testing.T) {
	s := SectorAt(1, 4) // [0, 90)
	tests := []struct {
		a    float64
		want bool
	}{
		{0, true},
		{45, true},
		{89.9, true},
		{90, false},
		{-1, false},
		{405, true},
		{-315, true},
	}
	for _, tt := range tests {
		if got := s.Contains(tt.a); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.a, got, tt.want)
		}
	}
}

func TestSectorUnderPointer(t *testing.T) {
	if got := SectorUnderPointer(0, 0); got != -1 {
		t.Errorf("empty wheel: got %d, want -1", got)
	}
	// Unrotated, sector 0 starts right at the pointer.
	if got := SectorUnderPointer(0, 5); got != 0 {
		t.Errorf("unrotated: got %d, want 0", got)
	}
	// Rotating a 4-name wheel by -91° brings sector 1 under the pointer.
	if got := SectorUnderPointer(-90-1, 4); got != 1 {
		t.Errorf("rotated -91: got %d, want 1", got)
	}
}

func TestColorFor(t *testing.T) {
	for i := 0; i < 10; i++ {
		if got, want := ColorFor(i), Palette[i%4]; got != want {
			t.Errorf("ColorFor(%d) = %s, want %s", i, got, want)
		}
	}
}

func TestLabelScale(t *testing.T) {
	tests := []struct{ n, want int }{
		{0, 14}, {6, 14}, {7, 13}, {10, 10}, {14, 6}, {40, 6},
	}
	for _, tt := range tests {
		if got := LabelScale(tt.n); got != tt.want {
			t.Errorf("LabelScale(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestSectorAtScreenAngle(t *testing.T) {
	tests := []struct {
		screen, rotation float64
		n, want          int
	}{
		{-90, 0, 4, 0},
		{0, 0, 4, 1},
		{90, 0, 4, 2},
		{180, 0, 4, 3},
		{0, 90, 4, 0},    // quarter turn clockwise brings sector 0 to 3 o'clock
		{-90, 360, 4, 0}, // full turns change nothing
		{10, 0, 0, -1},
	}
	for _, tt := range tests {
		if got := SectorAtScreenAngle(tt.screen, tt.rotation, tt.n); got != tt.want {
			t.Errorf("SectorAtScreenAngle(%v, %v, %d) = %d, want %d", tt.screen, tt.rotation, tt.n, got, tt.want)
		}
	}
}
