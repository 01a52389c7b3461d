package tui

import "github.com/charmbracelet/bubbles/key"

// Duration adjustment step for the +/- keys.
const durationStepMs = 500

// KeyMap holds the global key bindings. It implements help.KeyMap.
type KeyMap struct {
	Spin     key.Binding
	Reset    key.Binding
	Shuffle  key.Binding
	Rig      key.Binding
	Faster   key.Binding
	Slower   key.Binding
	Edit     key.Binding
	Next     key.Binding
	Prev     key.Binding
	Panel    key.Binding
	Help     key.Binding
	Quit     key.Binding
	StopEdit key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Spin:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "spin")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Shuffle:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shuffle")),
		Rig:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "rig mode")),
		Faster:   key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "shorter")),
		Slower:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "longer")),
		Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit names")),
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next panel")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev panel")),
		Panel:    key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "panel")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		StopEdit: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done editing")),
	}
}

// SetSpinning enables or disables the bindings that are refused while a
// spin is in flight.
func (k *KeyMap) SetSpinning(spinning bool) {
	k.Spin.SetEnabled(!spinning)
	k.Reset.SetEnabled(!spinning)
	k.Shuffle.SetEnabled(!spinning)
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Spin, k.Reset, k.Shuffle, k.Rig, k.Edit, k.Help, k.Quit}
}

// FullHelp returns the bindings shown by "?".
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Spin, k.Reset, k.Shuffle},
		{k.Rig, k.Faster, k.Slower},
		{k.Edit, k.StopEdit},
		{k.Next, k.Prev, k.Panel},
		{k.Help, k.Quit},
	}
}

// GlobalKeyBindings lists the keys that are always handled by the root model
// before dispatching to focused panels.
var GlobalKeyBindings = []string{"tab", "shift+tab", "1", "2", "3", "4", "q", "ctrl+c", "?", " ", "r", "s", "g", "+", "=", "-", "e"}

// panelKeys maps each FocusTarget to the keys that panel handles internally.
var panelKeys = map[FocusTarget][]string{
	FocusNames: {"e", "esc"},
	FocusSpins: {"j", "k", "enter"},
	FocusWheel: {},
	FocusLog:   {"[", "]", "j", "k", "f"},
}

// IsGlobalKey reports whether key is a global keybinding (handled before panel dispatch).
func IsGlobalKey(key string) bool {
	for _, k := range GlobalKeyBindings {
		if k == key {
			return true
		}
	}
	return false
}

// PanelKeys returns the list of keys handled by the given focused panel.
func PanelKeys(focus FocusTarget) []string {
	return panelKeys[focus]
}
