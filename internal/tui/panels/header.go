// Package panels provides the panel components for the wheel TUI.
package panels

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// HeaderProps holds all data needed to render the header bar.
// String fields for state avoid importing the wheel package here.
type HeaderProps struct {
	Title       string
	WorkDir     string
	Names       int
	RigMode     bool
	DurationMs  int
	Policy      string
	Spins       int
	StateSymbol string // e.g. "✓", "⟳"
	StateLabel  string // e.g. "IDLE", "SPINNING"
	Elapsed     time.Duration
	Clock       time.Time
}

// AbbreviatePath returns a display-friendly path, replacing the home directory
// with "~" and converting backslashes to forward slashes.
func AbbreviatePath(path string) string {
	if path == "" {
		return ""
	}
	if home, err := os.UserHomeDir(); err == nil && strings.HasPrefix(path, home) {
		path = "~" + path[len(home):]
	}
	return strings.ReplaceAll(path, "\\", "/")
}

// FormatElapsed renders a duration as a compact string: "5s", "2m30s", "1h15m".
func FormatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh%dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

// FormatDuration renders milliseconds as seconds: "5s", "2.5s".
func FormatDuration(ms int) string {
	if ms%1000 == 0 {
		return fmt.Sprintf("%ds", ms/1000)
	}
	return fmt.Sprintf("%.1fs", float64(ms)/1000)
}

// RenderHeader renders the header bar. accentStyle is applied to the full
// header bar width.
func RenderHeader(props HeaderProps, width int, accentStyle lipgloss.Style) string {
	title := "Wheel of Names"
	if props.Title != "" {
		title = props.Title
	}

	parts := []string{"🎡 " + title}
	if props.WorkDir != "" {
		parts = append(parts, "dir: "+AbbreviatePath(props.WorkDir))
	}

	rig := "off"
	if props.RigMode {
		rig = "on"
	}
	parts = append(parts,
		fmt.Sprintf("names: %d", props.Names),
		"rig: "+rig,
		"spin: "+FormatDuration(props.DurationMs),
	)
	if props.Policy != "" {
		parts = append(parts, "angle: "+props.Policy)
	}
	parts = append(parts, fmt.Sprintf("spins: %d", props.Spins))

	stateLabel := props.StateLabel
	if props.StateSymbol != "" && props.StateLabel != "" {
		stateLabel = props.StateSymbol + " " + props.StateLabel
	}
	if stateLabel != "" {
		parts = append(parts, stateLabel)
	}
	if props.Elapsed > 0 {
		parts = append(parts, "elapsed: "+FormatElapsed(props.Elapsed))
	}
	if !props.Clock.IsZero() {
		parts = append(parts, props.Clock.Format("15:04"))
	}

	content := strings.Join(parts, "  │  ")
	return accentStyle.Width(width).MaxHeight(1).Render(content)
}
