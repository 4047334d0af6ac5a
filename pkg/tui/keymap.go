package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the playground's key bindings outside the textarea
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Run    key.Binding
	Reset  key.Binding
	Paste  key.Binding
	NextEx key.Binding
	PrevEx key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Run: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "run"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "reset exercise"),
		),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "paste"),
		),
		NextEx: key.NewBinding(
			key.WithKeys("ctrl+right", "ctrl+n"),
			key.WithHelp("ctrl+→", "next exercise"),
		),
		PrevEx: key.NewBinding(
			key.WithKeys("ctrl+left", "ctrl+p"),
			key.WithHelp("ctrl+←", "previous exercise"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
