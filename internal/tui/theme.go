package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.WheelKing/internal/wheel"
)

// Theme holds accent-color-derived styles for the TUI.
type Theme struct {
	accent          lipgloss.Color
	accentStyle     lipgloss.Style // header background
	winnerStyle     lipgloss.Style // winner name
	borderFocused   lipgloss.Style // focused panel border
	borderUnfocused lipgloss.Style // unfocused panel border
}

// NewTheme creates a Theme from a hex accent color string (e.g. "#10B981").
// If accentColor is empty, the default accent color is used.
func NewTheme(accentColor string) Theme {
	color := defaultAccentColor
	if accentColor != "" {
		color = accentColor
	}
	c := lipgloss.Color(color)
	return Theme{
		accent: c,
		accentStyle: lipgloss.NewStyle().
			Background(c).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true),
		winnerStyle: lipgloss.NewStyle().
			Foreground(c).
			Bold(true),
		borderFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c),
		borderUnfocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray),
	}
}

// Accent returns the accent color.
func (t Theme) Accent() lipgloss.Color {
	return t.accent
}

// AccentHeaderStyle returns the style for the header bar.
func (t Theme) AccentHeaderStyle() lipgloss.Style {
	return t.accentStyle
}

// WinnerStyle returns the style used to highlight the winner.
func (t Theme) WinnerStyle() lipgloss.Style {
	return t.winnerStyle
}

// PanelBorderStyle returns the appropriate border style for a panel based on
// whether it currently holds keyboard focus.
func (t Theme) PanelBorderStyle(focused bool) lipgloss.Style {
	if focused {
		return t.borderFocused
	}
	return t.borderUnfocused
}

// RenderEventLine renders a controller event as a single terminal line.
func (t Theme) RenderEventLine(e wheel.Event, width int) string {
	ts := timestampStyle.Render(fmt.Sprintf("[%s]", e.Timestamp.Format("15:04:05")))
	icon := eventIcon(e.Kind)
	style := eventStyle(e.Kind)

	var text string
	switch e.Kind {
	case wheel.EventSpinStart:
		text = fmt.Sprintf("spin %s  %d names  %dms", shortID(e.SpinID), len(e.Names), e.DurationMs)
		if e.Rigged {
			text += "  rigged"
		}
	case wheel.EventSettled:
		text = fmt.Sprintf("winner: %s (#%d)", e.Name, e.Index+1)
	case wheel.EventNamesChanged:
		text = fmt.Sprintf("%d names", len(e.Names))
	case wheel.EventShuffled:
		text = "shuffled: " + strings.Join(e.Names, ", ")
	default:
		text = e.Message
	}

	maxText := width - 16
	if maxText < 20 {
		maxText = 20
	}
	if runes := []rune(text); len(runes) > maxText {
		text = string(runes[:maxText-1]) + "…"
	}
	return fmt.Sprintf("%s  %s %s", ts, icon, style.Render(text))
}

// shortID returns the first 8 characters of a spin ID.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
