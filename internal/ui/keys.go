package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev     key.Binding
	Next     key.Binding
	First    key.Binding
	Last     key.Binding
	Activate key.Binding
	Details  key.Binding
	Close    key.Binding
	Theme    key.Binding
	Down     key.Binding
	Up       key.Binding
	Jump     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		First:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home/g", "first")),
		Last:     key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end/G", "last")),
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "select")),
		Details:  key.NewBinding(key.WithKeys("d", "o"), key.WithHelp("d/o", "details")),
		Close:    key.NewBinding(key.WithKeys("esc", "q", "x"), key.WithHelp("esc", "close")),
		Theme:    key.NewBinding(key.WithKeys("t", "alt+t"), key.WithHelp("t", "theme")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/k", "scroll")),
		Up:       key.NewBinding(key.WithKeys("k", "up")),
		Jump:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "jump")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Activate, k.Details, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.First, k.Last},
		{k.Activate, k.Details, k.Close, k.Jump},
		{k.Down, k.Theme, k.Help, k.Quit},
	}
}
