package panels

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.WheelKing/internal/wheel"
)

const (
	// labelRadius places sector labels at this fraction of the radius.
	labelRadius = 0.62
	// minRadius is the smallest disc drawn.
	minRadius = 2
	// legendGap separates the disc from the legend.
	legendGap = 3
)

var (
	labelFG    = lipgloss.Color("#FFFFFF")
	pointerFG  = lipgloss.Color("#FAFAFA")
	legendDim  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	hubStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#111111")).Background(lipgloss.Color("#FAFAFA"))
	sectorBase = lipgloss.NewStyle().Foreground(labelFG)
)

// WheelState is the data the wheel panel draws.
type WheelState struct {
	Names    []string
	Angle    float64 // visual rotation, degrees clockwise
	Winner   string
	Spinning bool
	RigMode  bool
}

// WheelPanel draws the wheel, its pointer, a colour legend and the winner.
type WheelPanel struct {
	state  WheelState
	radius int // configured radius; shrunk to fit
	accent lipgloss.Style
	width  int
	height int
}

// NewWheelPanel creates a wheel panel with the configured radius.
func NewWheelPanel(radius int, accent lipgloss.Style, w, h int) WheelPanel {
	return WheelPanel{radius: radius, accent: accent, width: w, height: h}
}

// SetState replaces the drawn state.
func (p WheelPanel) SetState(s WheelState) WheelPanel {
	p.state = s
	return p
}

// SetAngle updates only the visual rotation.
func (p WheelPanel) SetAngle(angle float64) WheelPanel {
	p.state.Angle = angle
	return p
}

// State returns the drawn state.
func (p WheelPanel) State() WheelState {
	return p.state
}

// SetSize resizes the panel.
func (p WheelPanel) SetSize(w, h int) WheelPanel {
	p.width = w
	p.height = h
	return p
}

// Radius returns the disc radius that fits the current panel size.
func (p WheelPanel) Radius() int {
	r := p.radius
	// pointer row + disc + two status rows
	if maxR := (p.height - 4) / 2; r > maxR {
		r = maxR
	}
	// disc width is 4r+1; leave room for a short legend
	if maxR := (p.width - legendGap - 14) / 4; r > maxR {
		r = maxR
	}
	if r < minRadius {
		r = minRadius
	}
	return r
}

// View renders the panel.
func (p WheelPanel) View() string {
	s := p.state
	n := len(s.Names)
	if n == 0 {
		return lipgloss.NewStyle().
			Width(p.width).Height(p.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(lipgloss.Color("#888888")).
			Render("No names: press e to add some")
	}

	r := p.Radius()
	disc := RenderWheel(s.Names, s.Angle, r)
	legendW := p.width - (4*r + 1) - legendGap
	legend := p.renderLegend(len(disc), legendW)

	left := strings.Join(disc, "\n")
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", legendGap), strings.Join(legend, "\n"))

	var status string
	switch {
	case s.Spinning:
		status = "Spinning…"
	case s.Winner != "":
		status = "Winner: " + p.accent.Render(s.Winner)
	default:
		status = legendDim.Render("Press space to spin")
	}
	lines := []string{body, status}
	if s.RigMode && wheel.Rigged(n, true) {
		lines = append(lines, legendDim.Render(fmt.Sprintf("Tip: position %d wins in rig mode", wheel.ForcedIndex+1)))
	}
	return lipgloss.NewStyle().Width(p.width).Height(p.height).Render(strings.Join(lines, "\n"))
}

// renderLegend lists names with their sector colours, marking the name
// under the pointer while spinning and the winner once settled.
func (p WheelPanel) renderLegend(rows, width int) []string {
	s := p.state
	n := len(s.Names)
	under := wheel.SectorUnderPointer(s.Angle, n)

	shown := n
	if shown > rows {
		shown = rows - 1
	}
	out := make([]string, 0, rows)
	for i := 0; i < shown; i++ {
		swatch := sectorBase.Background(lipgloss.Color(wheel.ColorFor(i))).Render("  ")
		name := truncate(s.Names[i], width-8)
		line := fmt.Sprintf("%s %2d %s", swatch, i+1, name)
		switch {
		case !s.Spinning && s.Winner != "" && i == under && s.Names[i] == s.Winner:
			line = fmt.Sprintf("%s %2d %s", swatch, i+1, p.accent.Render(name+" ◀"))
		case s.Spinning && i == under:
			line += " ◂"
		}
		out = append(out, line)
	}
	if shown < n {
		out = append(out, legendDim.Render(fmt.Sprintf("   +%d more", n-shown)))
	}
	return out
}

// cell is one character of the disc: the sector it belongs to (-1 outside
// the disc) and the rune drawn on it.
type cell struct {
	sector int
	ch     rune
}

// WheelGrid computes the sector index of every cell of a disc of the given
// radius rotated by angle. Rows run top to bottom; each row is 4r+1 cells
// wide since terminal cells are about twice as tall as they are wide.
// Cells outside the disc hold -1.
func WheelGrid(n int, angle float64, r int) [][]int {
	grid := make([][]int, 2*r+1)
	limit := (float64(r) + 0.5) * (float64(r) + 0.5)
	for row := range grid {
		y := row - r
		grid[row] = make([]int, 4*r+1)
		for col := range grid[row] {
			dx := float64(col-2*r) / 2
			dy := float64(y)
			if dx*dx+dy*dy > limit || n == 0 {
				grid[row][col] = -1
				continue
			}
			theta := math.Atan2(dy, dx) * 180 / math.Pi
			grid[row][col] = wheel.SectorAtScreenAngle(theta, angle, n)
		}
	}
	return grid
}

// RenderWheel draws the pointer row and the disc with sector labels.
func RenderWheel(names []string, angle float64, r int) []string {
	n := len(names)
	grid := WheelGrid(n, angle, r)

	cells := make([][]cell, len(grid))
	for row := range grid {
		cells[row] = make([]cell, len(grid[row]))
		for col, sec := range grid[row] {
			cells[row][col] = cell{sector: sec, ch: ' '}
		}
	}
	placeLabels(cells, names, angle, r)
	cells[r][2*r].ch = '●'

	lines := make([]string, 0, len(cells)+1)
	lines = append(lines, strings.Repeat(" ", 2*r)+lipgloss.NewStyle().Foreground(pointerFG).Bold(true).Render("▼")+strings.Repeat(" ", 2*r))
	for row := range cells {
		lines = append(lines, renderRow(cells[row], row == r, 2*r))
	}
	return lines
}

// placeLabels writes a truncated name at each sector's midpoint when the
// sector is wide enough to hold text.
func placeLabels(cells [][]cell, names []string, angle float64, r int) {
	n := len(names)
	if n == 0 {
		return
	}
	span := wheel.SegmentSpan(n)
	// arc length in rows at the label radius
	if arc := labelRadius * float64(r) * span * math.Pi / 180; arc < 1.2 {
		return
	}
	maxChars := wheel.LabelScale(n) / 2
	if limit := int(labelRadius * float64(r) * 2); maxChars > limit {
		maxChars = limit
	}
	if maxChars < 1 {
		maxChars = 1
	}

	for i, name := range names {
		mid := (wheel.SectorAt(i, n).Mid + angle) * math.Pi / 180
		row := r + int(math.Round(labelRadius*float64(r)*math.Sin(mid)))
		center := 2*r + int(math.Round(2*labelRadius*float64(r)*math.Cos(mid)))
		label := []rune(truncate(name, maxChars))
		start := center - len(label)/2
		for k, ch := range label {
			col := start + k
			if row < 0 || row >= len(cells) || col < 0 || col >= len(cells[row]) {
				continue
			}
			if cells[row][col].sector != i {
				continue
			}
			cells[row][col].ch = ch
		}
	}
}

// renderRow styles runs of cells that share a sector.
func renderRow(row []cell, hubRow bool, hubCol int) string {
	var sb strings.Builder
	start := 0
	flush := func(end int) {
		if start >= end {
			return
		}
		var text strings.Builder
		for _, c := range row[start:end] {
			text.WriteRune(c.ch)
		}
		sec := row[start].sector
		if sec < 0 {
			sb.WriteString(text.String())
		} else {
			sb.WriteString(sectorBase.Background(lipgloss.Color(wheel.ColorFor(sec))).Render(text.String()))
		}
	}
	for col := range row {
		if hubRow && col == hubCol {
			flush(col)
			sb.WriteString(hubStyle.Render(string(row[col].ch)))
			start = col + 1
			continue
		}
		if col > start && row[col].sector != row[start].sector {
			flush(col)
			start = col
		}
	}
	flush(len(row))
	return sb.String()
}

// truncate shortens s to at most n runes, marking the cut with "…".
func truncate(s string, n int) string {
	runes := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(runes) <= n {
		return s
	}
	if n == 1 {
		return string(runes[:1])
	}
	return string(runes[:n-1]) + "…"
}
