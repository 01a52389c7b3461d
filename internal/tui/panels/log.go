package panels

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.WheelKing/internal/store"
	"github.com/LISSConsulting/LISSTech.WheelKing/internal/tui/components"
)

// LogTab identifies the active content tab in the log panel.
type LogTab int

const (
	TabEvents LogTab = iota // Live controller events
	TabSpin                 // Stored events of one spin
	TabTally                // Wins per name
)

var logTabLabels = []string{"Events", "Spin", "Tally"}

// tallyBarWidth is the widest tally bar drawn.
const tallyBarWidth = 20

// LogPanel is the bottom-right panel with event/spin/tally tabs.
type LogPanel struct {
	tabbar    components.TabBar
	events    components.LogView
	spin      components.LogView
	tally     []store.NameCount
	width     int
	height    int
	activeTab LogTab
}

// NewLogPanel creates a log panel with the events tab active.
func NewLogPanel(accent lipgloss.Color, w, h int) LogPanel {
	contentH := max(h-1, 1)
	return LogPanel{
		tabbar: components.NewTabBar(logTabLabels).WithAccent(accent).SetWidth(w),
		events: components.NewLogView(w, contentH),
		spin:   components.NewLogView(w, contentH),
		width:  w,
		height: h,
	}
}

// AppendEvent appends a pre-rendered event line.
func (p LogPanel) AppendEvent(rendered string) LogPanel {
	p.events = p.events.AppendLine(rendered)
	return p
}

// ShowSpin loads a spin's lines and switches to the spin tab.
func (p LogPanel) ShowSpin(lines []string) LogPanel {
	p.spin = p.spin.SetContent(lines)
	return p.SetTab(TabSpin)
}

// SetTally replaces the tally rows.
func (p LogPanel) SetTally(rows []store.NameCount) LogPanel {
	p.tally = rows
	return p
}

// SetTab switches to tab.
func (p LogPanel) SetTab(tab LogTab) LogPanel {
	p.tabbar = p.tabbar.SetActive(int(tab))
	p.activeTab = LogTab(p.tabbar.Active())
	return p
}

// ActiveTab returns the active tab.
func (p LogPanel) ActiveTab() LogTab {
	return p.activeTab
}

// SetSize resizes all internal viewports.
func (p LogPanel) SetSize(w, h int) LogPanel {
	p.width = w
	p.height = h
	contentH := max(h-1, 1)
	p.tabbar = p.tabbar.SetWidth(w)
	p.events = p.events.SetSize(w, contentH)
	p.spin = p.spin.SetSize(w, contentH)
	return p
}

// Update handles key messages for the log panel.
func (p LogPanel) Update(msg tea.Msg) (LogPanel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "]":
			p.tabbar = p.tabbar.Next()
			p.activeTab = LogTab(p.tabbar.Active())
			return p, nil
		case "[":
			p.tabbar = p.tabbar.Prev()
			p.activeTab = LogTab(p.tabbar.Active())
			return p, nil
		case "f":
			switch p.activeTab {
			case TabEvents:
				p.events = p.events.ToggleFollow()
			case TabSpin:
				p.spin = p.spin.ToggleFollow()
			}
			return p, nil
		}
	}

	// Scroll keys go to the active tab's view.
	var cmd tea.Cmd
	switch p.activeTab {
	case TabEvents:
		p.events, cmd = p.events.Update(msg)
	case TabSpin:
		p.spin, cmd = p.spin.Update(msg)
	}
	return p, cmd
}

// View renders the log panel: tab bar + active tab content.
func (p LogPanel) View() string {
	var content string
	switch p.activeTab {
	case TabEvents:
		content = p.events.View()
	case TabSpin:
		if p.spin.Len() == 0 {
			content = p.placeholder("Select a spin with enter")
		} else {
			content = p.spin.View()
		}
	case TabTally:
		content = p.renderTally()
	}
	return lipgloss.JoinVertical(lipgloss.Left, p.tabbar.View(), content)
}

func (p LogPanel) placeholder(text string) string {
	return lipgloss.NewStyle().
		Width(p.width).Height(max(p.height-1, 1)).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(lipgloss.Color("#888888")).
		Render(text)
}

// renderTally draws one bar per name, scaled to the top count.
func (p LogPanel) renderTally() string {
	if len(p.tally) == 0 {
		return p.placeholder("No winners yet")
	}

	top := p.tally[0].Wins
	nameW := 0
	for _, row := range p.tally {
		nameW = max(nameW, len([]rune(row.Name)))
	}
	nameW = min(nameW, 16)

	var sb strings.Builder
	for i, row := range p.tally {
		if i >= p.height-1 {
			break
		}
		bar := 1
		if top > 0 {
			bar = max(1, row.Wins*tallyBarWidth/top)
		}
		line := fmt.Sprintf("  %-*s %s %d", nameW, truncate(row.Name, nameW), strings.Repeat("█", bar), row.Wins)
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return lipgloss.NewStyle().
		Width(p.width).Height(max(p.height-1, 1)).
		Render(strings.TrimRight(sb.String(), "\n"))
}
