package panels

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.WheelKing/internal/store"
)

func newLogPanel() LogPanel {
	return NewLogPanel(lipgloss.Color("#10B981"), 60, 8)
}

func TestLogPanel_Events(t *testing.T) {
	p := newLogPanel().AppendEvent("winner: Dee")
	if p.ActiveTab() != TabEvents {
		t.Errorf("default tab = %v, want events", p.ActiveTab())
	}
	if !strings.Contains(p.View(), "winner: Dee") {
		t.Errorf("View missing event: %q", p.View())
	}
}

func TestLogPanel_TabSwitching(t *testing.T) {
	p := newLogPanel()
	p, _ = p.Update(keyRune(']'))
	if p.ActiveTab() != TabSpin {
		t.Errorf("] → %v, want spin", p.ActiveTab())
	}
	if !strings.Contains(p.View(), "Select a spin") {
		t.Errorf("empty spin tab placeholder missing: %q", p.View())
	}
	p, _ = p.Update(keyRune('['))
	p, _ = p.Update(keyRune('['))
	if p.ActiveTab() != TabTally {
		t.Errorf("[[ → %v, want tally", p.ActiveTab())
	}
	if !strings.Contains(p.View(), "No winners yet") {
		t.Errorf("empty tally placeholder missing: %q", p.View())
	}
}

func TestLogPanel_ShowSpin(t *testing.T) {
	p := newLogPanel().ShowSpin([]string{"spin started", "winner: Bo"})
	if p.ActiveTab() != TabSpin {
		t.Fatalf("ShowSpin should switch to the spin tab")
	}
	if !strings.Contains(p.View(), "winner: Bo") {
		t.Errorf("spin lines missing: %q", p.View())
	}
}

func TestLogPanel_Tally(t *testing.T) {
	p := newLogPanel().SetTally([]store.NameCount{{Name: "Dee", Wins: 4}, {Name: "Ana", Wins: 1}}).SetTab(TabTally)
	view := p.View()
	for _, want := range []string{"Dee", "Ana", strings.Repeat("█", tallyBarWidth) + " 4", "█████ 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("tally missing %q: %q", want, view)
		}
	}
}

func TestLogPanel_FollowToggle(t *testing.T) {
	p := newLogPanel()
	p, _ = p.Update(keyRune('f'))
	if p.events.Following() {
		t.Error("f should toggle follow off on the events tab")
	}
}
