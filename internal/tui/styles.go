// Package tui provides a bubbletea + lipgloss terminal UI for the wheel.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.WheelKing/internal/wheel"
)

// defaultAccentColor is the default accent color (emerald).
const defaultAccentColor = "#10B981"

var (
	colorWhite  = lipgloss.Color("#FAFAFA")
	colorGray   = lipgloss.Color("#888888")
	colorBlue   = lipgloss.Color("#5B9BD5")
	colorGreen  = lipgloss.Color("#6BCB77")
	colorYellow = lipgloss.Color("#FFD93D")
	colorOrange = lipgloss.Color("#FFA54F")
)

// Styles used across the TUI. Accent-dependent styles live on Theme.
var (
	timestampStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	spinStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	settledStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	resetStyle = lipgloss.NewStyle().
			Foreground(colorOrange)

	namesStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorWhite)
)

// eventIcon returns the icon for an event kind.
func eventIcon(kind wheel.EventKind) string {
	switch kind {
	case wheel.EventSpinStart:
		return "🎡"
	case wheel.EventSettled:
		return "🏆"
	case wheel.EventReset:
		return "↺"
	case wheel.EventNamesChanged:
		return "✏️ "
	case wheel.EventShuffled:
		return "🔀"
	default:
		return "•"
	}
}

// eventStyle returns the lipgloss style for an event kind.
func eventStyle(kind wheel.EventKind) lipgloss.Style {
	switch kind {
	case wheel.EventSpinStart:
		return spinStyle
	case wheel.EventSettled:
		return settledStyle
	case wheel.EventReset:
		return resetStyle
	case wheel.EventNamesChanged, wheel.EventShuffled:
		return namesStyle
	default:
		return infoStyle
	}
}
