package tui

// Rect represents a rectangular region of the terminal.
type Rect struct {
	X, Y, Width, Height int
}

// Minimum terminal size for the multi-panel layout.
const (
	MinWidth  = 80
	MinHeight = 24
)

// Layout holds the computed panel geometry for a given terminal size.
type Layout struct {
	Header, Footer Rect
	Names, Spins   Rect
	Wheel, Log     Rect
	TooSmall       bool // true when terminal is below MinWidth×MinHeight
}

// Calculate computes the panel layout for a terminal of the given dimensions.
// Returns a Layout with TooSmall=true below the minimum size.
//
// Algorithm:
//   - Header: full width, 1 row at top
//   - Footer: full width, 1 row at bottom
//   - Sidebar: 25% of width, clamped to [24, 35]
//   - Names: sidebar width × 55% of body height (top of sidebar)
//   - Spins: sidebar width × remaining body height (bottom of sidebar)
//   - Wheel: remaining width × 70% of body height (top-right)
//   - Log: remaining width × remaining body height (bottom-right)
func Calculate(width, height int) Layout {
	if width < MinWidth || height < MinHeight {
		return Layout{TooSmall: true}
	}

	bodyH := height - 2 // subtract header + footer rows

	sidebarW := width * 25 / 100
	if sidebarW < 24 {
		sidebarW = 24
	}
	if sidebarW > 35 {
		sidebarW = 35
	}
	rightW := width - sidebarW

	namesH := bodyH * 55 / 100
	spinsH := bodyH - namesH

	wheelH := bodyH * 70 / 100
	logH := bodyH - wheelH

	return Layout{
		Header: Rect{X: 0, Y: 0, Width: width, Height: 1},
		Footer: Rect{X: 0, Y: height - 1, Width: width, Height: 1},
		Names:  Rect{X: 0, Y: 1, Width: sidebarW, Height: namesH},
		Spins:  Rect{X: 0, Y: 1 + namesH, Width: sidebarW, Height: spinsH},
		Wheel:  Rect{X: sidebarW, Y: 1, Width: rightW, Height: wheelH},
		Log:    Rect{X: sidebarW, Y: 1 + wheelH, Width: rightW, Height: logH},
	}
}

// innerDims returns the content dimensions for a panel rect accounting for
// the 1-character border on each side (2 total per dimension).
func innerDims(r Rect) (w, h int) {
	w = r.Width - 2
	if w < 1 {
		w = 1
	}
	h = r.Height - 2
	if h < 1 {
		h = 1
	}
	return
}
