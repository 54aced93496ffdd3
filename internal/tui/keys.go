package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up            key.Binding
	down          key.Binding
	enter         key.Binding
	esc           key.Binding
	tab           key.Binding
	backtab       key.Binding
	quit          key.Binding
	logout        key.Binding
	entry         key.Binding
	exit          key.Binding
	refresh       key.Binding
	password      key.Binding
	notifications key.Binding
	markRead      key.Binding
	markAllRead   key.Binding
}

var keys = keyMap{
	up:            key.NewBinding(key.WithKeys("up", "k")),
	down:          key.NewBinding(key.WithKeys("down", "j")),
	enter:         key.NewBinding(key.WithKeys("enter")),
	esc:           key.NewBinding(key.WithKeys("esc")),
	tab:           key.NewBinding(key.WithKeys("tab")),
	backtab:       key.NewBinding(key.WithKeys("shift+tab")),
	quit:          key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:        key.NewBinding(key.WithKeys("o")),
	entry:         key.NewBinding(key.WithKeys("e")),
	exit:          key.NewBinding(key.WithKeys("x")),
	refresh:       key.NewBinding(key.WithKeys("r")),
	password:      key.NewBinding(key.WithKeys("p")),
	notifications: key.NewBinding(key.WithKeys("n")),
	markRead:      key.NewBinding(key.WithKeys("m")),
	markAllRead:   key.NewBinding(key.WithKeys("a")),
}
