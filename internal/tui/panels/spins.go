package panels

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.WheelKing/internal/store"
)

// SpinSelectedMsg is emitted when the user opens a settled spin.
type SpinSelectedMsg struct{ ID string }

// spinItem implements list.Item for a spin summary.
type spinItem struct {
	summary store.SpinSummary
	number  int
	running bool // placeholder row for the spin in flight
}

func (i spinItem) Title() string {
	if i.running {
		return fmt.Sprintf("#%d ⟳", i.number)
	}
	mark := "✓"
	if i.summary.Rigged {
		mark = "★"
	}
	return fmt.Sprintf("#%d %s %s", i.number, mark, i.summary.Winner)
}

func (i spinItem) Description() string {
	if i.running {
		return "spinning…"
	}
	return i.summary.EndAt.Format("15:04:05")
}

func (i spinItem) FilterValue() string {
	return i.summary.Winner
}

// SpinsPanel lists settled spins, newest last.
type SpinsPanel struct {
	list    list.Model
	spins   []store.SpinSummary
	running bool
	width   int
	height  int
}

// spinDelegate is a compact single-line item delegate.
type spinDelegate struct{}

func (d spinDelegate) Height() int                             { return 1 }
func (d spinDelegate) Spacing() int                            { return 0 }
func (d spinDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d spinDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(spinItem)
	if !ok {
		return
	}
	s := fmt.Sprintf("%s  %s", item.Title(), dimStyle.Render(item.Description()))
	if index == m.Index() {
		s = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981")).Render("> " + s)
	} else {
		s = "  " + s
	}
	_, _ = fmt.Fprint(w, s)
}

// NewSpinsPanel creates an empty spins panel.
func NewSpinsPanel(w, h int) SpinsPanel {
	l := list.New(nil, spinDelegate{}, w, h)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	return SpinsPanel{list: l, width: w, height: h}
}

// AddSpin appends a settled spin and selects it.
func (p SpinsPanel) AddSpin(s store.SpinSummary) SpinsPanel {
	p.spins = append(p.spins, s)
	p.running = false
	p.list.SetItems(p.buildItems())
	p.list.Select(len(p.spins) - 1)
	return p
}

// SetRunning shows or hides the row for the spin in flight.
func (p SpinsPanel) SetRunning(running bool) SpinsPanel {
	p.running = running
	p.list.SetItems(p.buildItems())
	return p
}

// Spins returns the settled spins shown.
func (p SpinsPanel) Spins() []store.SpinSummary {
	return p.spins
}

func (p SpinsPanel) buildItems() []list.Item {
	items := make([]list.Item, 0, len(p.spins)+1)
	for i, s := range p.spins {
		items = append(items, spinItem{summary: s, number: i + 1})
	}
	if p.running {
		items = append(items, spinItem{number: len(p.spins) + 1, running: true})
	}
	return items
}

// SelectedSpin returns the highlighted settled spin, or nil.
func (p SpinsPanel) SelectedSpin() *store.SpinSummary {
	if item, ok := p.list.SelectedItem().(spinItem); ok && !item.running {
		s := item.summary
		return &s
	}
	return nil
}

// SetSize resizes the panel.
func (p SpinsPanel) SetSize(w, h int) SpinsPanel {
	p.width = w
	p.height = h
	p.list.SetSize(w, h)
	return p
}

// Update handles key/mouse messages for the panel.
func (p SpinsPanel) Update(msg tea.Msg) (SpinsPanel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			p.list, cmd = p.list.Update(tea.KeyMsg{Type: tea.KeyDown})
		case "k", "up":
			p.list, cmd = p.list.Update(tea.KeyMsg{Type: tea.KeyUp})
		case "enter":
			if sel := p.SelectedSpin(); sel != nil {
				id := sel.SpinID
				return p, func() tea.Msg { return SpinSelectedMsg{ID: id} }
			}
		default:
			p.list, cmd = p.list.Update(msg)
		}
	default:
		p.list, cmd = p.list.Update(msg)
	}
	return p, cmd
}

// View renders the spins panel.
func (p SpinsPanel) View() string {
	if len(p.spins) == 0 && !p.running {
		return lipgloss.NewStyle().
			Width(p.width).Height(p.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(lipgloss.Color("#888888")).
			Render("No spins yet")
	}
	return p.list.View()
}
