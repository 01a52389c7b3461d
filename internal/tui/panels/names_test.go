package panels

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNamesPanel_View(t *testing.T) {
	p := NewNamesPanel([]string{"Ana", "Bo", "Cy", "Dee"}, 30, 12)
	view := p.View()
	for _, want := range []string{"4 names", " 1 Ana", " 4 Dee"} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q: %q", want, view)
		}
	}
	if strings.Contains(view, "★") {
		t.Error("rig mark shown with rig mode off")
	}
	if !strings.Contains(p.SetRigMode(true).View(), "★") {
		t.Error("rig mark missing with rig mode on")
	}
}

func TestNamesPanel_View_Empty(t *testing.T) {
	view := NewNamesPanel(nil, 30, 12).View()
	if !strings.Contains(view, "No names") {
		t.Errorf("empty view = %q", view)
	}
}

func TestNamesPanel_View_Overflow(t *testing.T) {
	names := make([]string, 30)
	for i := range names {
		names[i] = "N"
	}
	view := NewNamesPanel(names, 30, 8).View()
	if !strings.Contains(view, "more") {
		t.Errorf("overflow marker missing: %q", view)
	}
}

func TestNamesPanel_EditCycle(t *testing.T) {
	p := NewNamesPanel([]string{"Ana", "Bo"}, 30, 12)
	if p.Editing() {
		t.Fatal("panel should not start in edit mode")
	}

	p, cmd := p.Update(keyRune('e'))
	if !p.Editing() {
		t.Fatal("e should start editing")
	}
	if cmd == nil {
		t.Error("StartEditing should return a focus command")
	}

	p, cmd = p.Update(keyRune('X'))
	if !strings.Contains(p.Text(), "X") {
		t.Fatalf("typed rune missing from text %q", p.Text())
	}
	var edited *NamesEditedMsg
	for _, msg := range collectMsgs(cmd) {
		if m, ok := msg.(NamesEditedMsg); ok {
			edited = &m
		}
	}
	if edited == nil || edited.Text != p.Text() {
		t.Errorf("expected NamesEditedMsg with current text, got %+v", edited)
	}

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if p.Editing() {
		t.Error("esc should stop editing")
	}
	// Without SetNames the shown text reverts to the last accepted list.
	if p.Text() != "Ana\nBo" {
		t.Errorf("text after esc = %q", p.Text())
	}
}

func TestNamesPanel_SetNamesWhileEditing(t *testing.T) {
	p := NewNamesPanel([]string{"Ana"}, 30, 12)
	p, _ = p.StartEditing()
	p, _ = p.Update(keyRune('Z'))
	typed := p.Text()

	p = p.SetNames([]string{"Other"})
	if p.Text() != typed {
		t.Errorf("SetNames clobbered the editor: %q", p.Text())
	}
	p = p.StopEditing()
	if p.Text() != "Other" {
		t.Errorf("text after StopEditing = %q, want Other", p.Text())
	}
}

func TestNamesPanel_IgnoresKeysWhenNotEditing(t *testing.T) {
	p := NewNamesPanel([]string{"Ana"}, 30, 12)
	p, cmd := p.Update(keyRune('x'))
	if cmd != nil || p.Editing() || p.Text() != "Ana" {
		t.Error("keys outside edit mode should be ignored")
	}
}
