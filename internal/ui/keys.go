package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keyboard bindings. Only Quit is matched by the model;
// the rest describe keys the stream state interprets itself and feed the
// help line.
type keyMap struct {
	Quit       key.Binding
	Repaint    key.Binding
	ToggleKeys key.Binding
	SelectKey  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Repaint: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "repaint"),
		),
		ToggleKeys: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "keys/tail"),
		),
		SelectKey: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "a", "b", "c", "d", "e", "f"),
			key.WithHelp("0-f", "select key"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Repaint, k.ToggleKeys, k.SelectKey, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Repaint, k.ToggleKeys},
		{k.SelectKey, k.Quit},
	}
}
