package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Prev    key.Binding
	Next    key.Binding
	Open    key.Binding
	Back    key.Binding
	Quit    key.Binding
	Search  key.Binding
	Filter  key.Binding
	Refresh key.Binding
	New     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Logout  key.Binding
	Exit    key.Binding
	Tab     key.Binding
	BackTab key.Binding
	Yes     key.Binding
	No      key.Binding
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k")),
	Down:    key.NewBinding(key.WithKeys("down", "j")),
	Prev:    key.NewBinding(key.WithKeys("left", "h", "pgup")),
	Next:    key.NewBinding(key.WithKeys("right", "l", "pgdown")),
	Open:    key.NewBinding(key.WithKeys("enter")),
	Back:    key.NewBinding(key.WithKeys("esc")),
	Quit:    key.NewBinding(key.WithKeys("ctrl+c")),
	Search:  key.NewBinding(key.WithKeys("/")),
	Filter:  key.NewBinding(key.WithKeys("c")),
	Refresh: key.NewBinding(key.WithKeys("r")),
	New:     key.NewBinding(key.WithKeys("n")),
	Edit:    key.NewBinding(key.WithKeys("e")),
	Delete:  key.NewBinding(key.WithKeys("d", "delete")),
	Logout:  key.NewBinding(key.WithKeys("l", "L")),
	Exit:    key.NewBinding(key.WithKeys("q")),
	Tab:     key.NewBinding(key.WithKeys("tab", "down")),
	BackTab: key.NewBinding(key.WithKeys("shift+tab", "up")),
	Yes:     key.NewBinding(key.WithKeys("y", "Y")),
	No:      key.NewBinding(key.WithKeys("n", "N", "esc")),
}
