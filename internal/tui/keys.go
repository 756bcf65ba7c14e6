package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up     key.Binding
	down   key.Binding
	toggle key.Binding
	reload key.Binding
	copy   key.Binding
	quit   key.Binding
}

var keys = keyMap{
	up:     key.NewBinding(key.WithKeys("up", "k")),
	down:   key.NewBinding(key.WithKeys("down", "j")),
	toggle: key.NewBinding(key.WithKeys(" ", "enter")),
	reload: key.NewBinding(key.WithKeys("r")),
	copy:   key.NewBinding(key.WithKeys("c")),
	quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
