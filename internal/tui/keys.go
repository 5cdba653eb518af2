package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up     key.Binding
	down   key.Binding
	toggle key.Binding
	send   key.Binding
	reload key.Binding
	copy   key.Binding
	info   key.Binding
	esc    key.Binding
	quit   key.Binding
}

var keys = keyMap{
	up:     key.NewBinding(key.WithKeys("up", "k")),
	down:   key.NewBinding(key.WithKeys("down", "j")),
	toggle: key.NewBinding(key.WithKeys(" ", "space")),
	send:   key.NewBinding(key.WithKeys("s")),
	reload: key.NewBinding(key.WithKeys("r")),
	copy:   key.NewBinding(key.WithKeys("c")),
	info:   key.NewBinding(key.WithKeys("v")),
	esc:    key.NewBinding(key.WithKeys("esc")),
	quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
