package dropdown

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings a Panel reacts to.
type KeyMap struct {
	// Toggle activates the header.
	Toggle key.Binding
	// Collapse closes an expanded panel, like a click on the scrim.
	Collapse key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("tab", " "),
			key.WithHelp("tab/space", "toggle"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Collapse}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
