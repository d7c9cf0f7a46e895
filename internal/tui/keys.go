package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Reveal  key.Binding
	NewHand key.Binding
	Chart   key.Binding
	Up      key.Binding
	Down    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Reveal: key.NewBinding(
			key.WithKeys(" ", "enter", "d"),
			key.WithHelp("space", "deal next"),
		),
		NewHand: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new hand"),
		),
		Chart: key.NewBinding(
			key.WithKeys("c", "tab"),
			key.WithHelp("c", "hand chart"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reveal, k.NewHand, k.Chart, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Reveal, k.NewHand, k.Chart},
		{k.Up, k.Down, k.Quit},
	}
}
