package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit key.Binding
	Prev   key.Binding
	Next   key.Binding
	Toggle key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Prev, k.Toggle, k.Clear, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Toggle},
		{k.Prev, k.Next},
		{k.Clear, k.Quit},
	}
}

var defaultKeys = keyMap{
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save to history")),
	Prev:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "older")),
	Next:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "newer")),
	Toggle: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "html")),
	Clear:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
	Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
}
