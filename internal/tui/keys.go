package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up             key.Binding
	down           key.Binding
	enter          key.Binding
	back           key.Binding
	refresh        key.Binding
	subscriptions  key.Binding
	profile        key.Binding
	edit           key.Binding
	changePassword key.Binding
	logout         key.Binding
	copy           key.Binding
	reset          key.Binding
	mt5            key.Binding
	linkAccount    key.Binding
	startAlgorithm key.Binding
	stopAlgorithm  key.Binding
	pauseAlgorithm key.Binding
	resume         key.Binding
	manualStats    key.Binding
	deleteAccount  key.Binding
	testConnection key.Binding
}

var keys = keyMap{
	up:             key.NewBinding(key.WithKeys("up", "k")),
	down:           key.NewBinding(key.WithKeys("down", "j")),
	enter:          key.NewBinding(key.WithKeys("enter")),
	back:           key.NewBinding(key.WithKeys("esc")),
	refresh:        key.NewBinding(key.WithKeys("r")),
	subscriptions:  key.NewBinding(key.WithKeys("s")),
	profile:        key.NewBinding(key.WithKeys("p")),
	edit:           key.NewBinding(key.WithKeys("e")),
	changePassword: key.NewBinding(key.WithKeys("c")),
	logout:         key.NewBinding(key.WithKeys("l")),
	copy:           key.NewBinding(key.WithKeys("c")),
	reset:          key.NewBinding(key.WithKeys("r")),
	mt5:            key.NewBinding(key.WithKeys("m")),
	linkAccount:    key.NewBinding(key.WithKeys("a")),
	startAlgorithm: key.NewBinding(key.WithKeys("n")),
	stopAlgorithm:  key.NewBinding(key.WithKeys("x")),
	pauseAlgorithm: key.NewBinding(key.WithKeys("p")),
	resume:         key.NewBinding(key.WithKeys("u")),
	manualStats:    key.NewBinding(key.WithKeys("t")),
	deleteAccount:  key.NewBinding(key.WithKeys("d")),
	testConnection: key.NewBinding(key.WithKeys("ctrl+t")),
}
