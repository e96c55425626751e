package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the game screen.
// Printable keys always go to the command line, so no binding uses a letter.
type KeyMap struct {
	Submit     key.Binding
	Complete   key.Binding
	Reset      key.Binding
	Quit       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "scroll down"),
		),
	}
}

// HelpText returns a formatted help string for the game screen.
func (k KeyMap) HelpText() string {
	return "enter run • tab complete • pgup/pgdown scroll • ctrl+r restart • esc quit"
}
