package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.WheelKing/internal/wheel"
)

// NamesEditedMsg is emitted on every edit with the raw editor text.
// Defined here (not in parent tui package) to avoid circular imports.
type NamesEditedMsg struct{ Text string }

var (
	rigMarkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// NamesPanel shows the name list and edits it in a textarea.
type NamesPanel struct {
	area    textarea.Model
	names   []string
	rigMode bool
	editing bool
	width   int
	height  int
}

// NewNamesPanel creates a names panel showing names.
func NewNamesPanel(names []string, w, h int) NamesPanel {
	ta := textarea.New()
	ta.Placeholder = "Enter names here..."
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.SetWidth(w)
	ta.SetHeight(max(h-1, 1))
	ta.SetValue(wheel.Join(names))
	ta.Blur()
	return NamesPanel{
		area:   ta,
		names:  append([]string(nil), names...),
		width:  w,
		height: h,
	}
}

// Editing reports whether the textarea is capturing keys.
func (p NamesPanel) Editing() bool {
	return p.editing
}

// Text returns the raw editor text.
func (p NamesPanel) Text() string {
	return p.area.Value()
}

// SetNames refreshes the displayed list. The editor text is replaced
// unless the user is typing in it.
func (p NamesPanel) SetNames(names []string) NamesPanel {
	p.names = append([]string(nil), names...)
	if !p.editing {
		p.area.SetValue(wheel.Join(names))
	}
	return p
}

// SetRigMode marks the forced position in the list.
func (p NamesPanel) SetRigMode(on bool) NamesPanel {
	p.rigMode = on
	return p
}

// StartEditing focuses the textarea.
func (p NamesPanel) StartEditing() (NamesPanel, tea.Cmd) {
	p.editing = true
	cmd := p.area.Focus()
	return p, tea.Batch(cmd, textarea.Blink)
}

// StopEditing blurs the textarea and normalizes the shown text.
func (p NamesPanel) StopEditing() NamesPanel {
	p.editing = false
	p.area.Blur()
	p.area.SetValue(wheel.Join(p.names))
	return p
}

// SetSize resizes the panel.
func (p NamesPanel) SetSize(w, h int) NamesPanel {
	p.width = w
	p.height = h
	p.area.SetWidth(w)
	p.area.SetHeight(max(h-1, 1))
	return p
}

// Update handles key messages. While editing, every key except esc goes
// to the textarea and each change emits NamesEditedMsg.
func (p NamesPanel) Update(msg tea.Msg) (NamesPanel, tea.Cmd) {
	if !p.editing {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "e", "enter":
				return p.StartEditing()
			}
		}
		return p, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		return p.StopEditing(), nil
	}

	before := p.area.Value()
	var cmd tea.Cmd
	p.area, cmd = p.area.Update(msg)
	if after := p.area.Value(); after != before {
		edited := func() tea.Msg { return NamesEditedMsg{Text: after} }
		return p, tea.Batch(cmd, edited)
	}
	return p, cmd
}

// View renders the panel: the editor while editing, a numbered list
// otherwise.
func (p NamesPanel) View() string {
	title := dimStyle.Render(fmt.Sprintf("%d names", len(p.names)))
	if p.editing {
		return lipgloss.JoinVertical(lipgloss.Left, title, p.area.View())
	}
	if len(p.names) == 0 {
		return lipgloss.NewStyle().
			Width(p.width).Height(p.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(lipgloss.Color("#888888")).
			Render("No names\npress e to edit")
	}

	rows := p.height - 1
	lines := []string{title}
	for i, name := range p.names {
		if i >= rows-1 && len(p.names) > rows {
			lines = append(lines, dimStyle.Render(fmt.Sprintf("  +%d more", len(p.names)-i)))
			break
		}
		line := fmt.Sprintf("%2d %s", i+1, truncate(name, p.width-5))
		if p.rigMode && i == wheel.ForcedIndex {
			line = rigMarkStyle.Render(line + " ★")
		}
		lines = append(lines, line)
	}
	return lipgloss.NewStyle().Width(p.width).Height(p.height).Render(strings.Join(lines, "\n"))
}
