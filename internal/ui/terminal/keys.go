package terminal

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Pause       key.Binding
	Reset       key.Binding
	Acknowledge key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause/resume"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Acknowledge: key.NewBinding(
			key.WithKeys("a", "enter"),
			key.WithHelp("a", "acknowledge trophy"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (keys keyMap) help() []key.Binding {
	return []key.Binding{keys.Pause, keys.Reset, keys.Acknowledge, keys.Quit}
}
