package panels

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

// FooterProps holds all data needed to render the footer bar.
type FooterProps struct {
	Focus   string // "names", "spins", "wheel", "log"
	Editing bool   // names editor is capturing keys
	Help    string // rendered global key help
}

// RenderFooter renders the context-sensitive footer bar.
// Left side: panel hints for the current focus. Right side: global help.
func RenderFooter(props FooterProps, width int) string {
	left := panelHints(props.Focus)
	right := props.Help
	if props.Editing {
		left = "editing names: one per line"
		right = "esc:done  ctrl+c:quit"
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}

	return footerStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

// panelHints returns the context-sensitive keybinding hints for a given focus.
func panelHints(focus string) string {
	switch focus {
	case "names":
		return "e:edit  tab:next panel"
	case "spins":
		return "j/k:navigate  enter:view  tab:next panel"
	case "wheel":
		return "space:spin  tab:next panel"
	case "log":
		return "[/]:tab  j/k:scroll  f:follow  tab:next panel"
	default:
		return "tab:next panel"
	}
}
