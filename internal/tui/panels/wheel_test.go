package panels

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.WheelKing/internal/wheel"
)

func TestWheelGrid_Dimensions(t *testing.T) {
	const r = 5
	grid := WheelGrid(4, 0, r)
	if len(grid) != 2*r+1 {
		t.Fatalf("rows = %d, want %d", len(grid), 2*r+1)
	}
	for i, row := range grid {
		if len(row) != 4*r+1 {
			t.Fatalf("row %d has %d cells, want %d", i, len(row), 4*r+1)
		}
	}
	if grid[0][0] != -1 || grid[2*r][4*r] != -1 {
		t.Error("corners should be outside the disc")
	}
}

func TestWheelGrid_TopCellMatchesPointer(t *testing.T) {
	const r = 6
	tests := []struct {
		name  string
		n     int
		angle float64
	}{
		{"unrotated", 4, 0},
		{"rigged target", 4, wheel.BaseAlignment(3, 4) + 9*360},
		{"ten names index 7", 10, wheel.BaseAlignment(7, 10) + 11*360},
		{"odd angle", 5, 1234.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := WheelGrid(tt.n, tt.angle, r)
			// The top-centre cell sits straight under the pointer.
			if got, want := grid[0][2*r], wheel.SectorUnderPointer(tt.angle, tt.n); got != want {
				t.Errorf("top cell sector = %d, want %d", got, want)
			}
		})
	}
}

func TestWheelGrid_Quadrants(t *testing.T) {
	const r = 6
	grid := WheelGrid(4, 0, r)
	// 3 o'clock, 6 o'clock and 9 o'clock on an unrotated 4-name wheel.
	if got := grid[r][4*r]; got != 1 {
		t.Errorf("right edge sector = %d, want 1", got)
	}
	if got := grid[2*r][2*r]; got != 2 {
		t.Errorf("bottom sector = %d, want 2", got)
	}
	if got := grid[r][0]; got != 3 {
		t.Errorf("left edge sector = %d, want 3", got)
	}
}

func TestWheelGrid_Empty(t *testing.T) {
	for _, row := range WheelGrid(0, 0, 3) {
		for _, c := range row {
			if c != -1 {
				t.Fatal("empty wheel should have no sectors")
			}
		}
	}
}

func TestRenderWheel_PointerAndLabels(t *testing.T) {
	lines := RenderWheel([]string{"Alpha", "Beta"}, 0, 8)
	if len(lines) != 2*8+2 {
		t.Fatalf("got %d lines, want %d", len(lines), 2*8+2)
	}
	if !strings.Contains(lines[0], "▼") {
		t.Errorf("first line should hold the pointer: %q", lines[0])
	}
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"Alpha", "Beta", "●"} {
		if !strings.Contains(joined, want) {
			t.Errorf("wheel missing %q", want)
		}
	}
}

func TestRenderWheel_NoLabelsWhenCrowded(t *testing.T) {
	names := make([]string, 60)
	for i := range names {
		names[i] = "Zed"
	}
	joined := strings.Join(RenderWheel(names, 0, 3), "\n")
	if strings.Contains(joined, "Z") {
		t.Error("labels drawn on sectors too narrow to hold them")
	}
}

func TestWheelPanel_View(t *testing.T) {
	accent := lipgloss.NewStyle()
	names := []string{"Ana", "Bo", "Cy", "Dee"}

	tests := []struct {
		name  string
		state WheelState
		want  []string
		not   []string
	}{
		{"empty", WheelState{}, []string{"No names"}, nil},
		{"idle", WheelState{Names: names}, []string{"Press space to spin", "Dee"}, []string{"Tip:"}},
		{"spinning", WheelState{Names: names, Spinning: true}, []string{"Spinning"}, nil},
		{"winner", WheelState{Names: names, Winner: "Dee", Angle: wheel.BaseAlignment(3, 4)}, []string{"Winner: Dee", "◀"}, nil},
		{"rig tip", WheelState{Names: names, RigMode: true}, []string{"Tip: position 4 wins"}, nil},
		{"no tip below four", WheelState{Names: names[:3], RigMode: true}, nil, []string{"Tip:"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := NewWheelPanel(8, accent, 70, 24).SetState(tt.state).View()
			for _, want := range tt.want {
				if !strings.Contains(view, want) {
					t.Errorf("View missing %q", want)
				}
			}
			for _, not := range tt.not {
				if strings.Contains(view, not) {
					t.Errorf("View should not contain %q", not)
				}
			}
		})
	}
}

func TestWheelPanel_Radius(t *testing.T) {
	tests := []struct {
		configured, w, h, want int
	}{
		{10, 120, 40, 10},
		{10, 120, 14, 5},
		{10, 40, 40, 5},
		{10, 10, 5, minRadius},
	}
	for _, tt := range tests {
		p := NewWheelPanel(tt.configured, lipgloss.NewStyle(), tt.w, tt.h)
		if got := p.Radius(); got != tt.want {
			t.Errorf("Radius(r=%d, %dx%d) = %d, want %d", tt.configured, tt.w, tt.h, got, tt.want)
		}
	}
}

func TestWheelPanel_SetAngle(t *testing.T) {
	p := NewWheelPanel(6, lipgloss.NewStyle(), 60, 20).SetState(WheelState{Names: []string{"A"}, Winner: "A"})
	p = p.SetAngle(90)
	if s := p.State(); s.Angle != 90 || s.Winner != "A" {
		t.Errorf("SetAngle changed more than the angle: %+v", s)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		s    string
		n    int
		want string
	}{
		{"Kaushiki", 10, "Kaushiki"},
		{"Kaushiki", 5, "Kaus…"},
		{"Kaushiki", 1, "K"},
		{"Kaushiki", 0, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.s, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.s, tt.n, got, tt.want)
		}
	}
}
