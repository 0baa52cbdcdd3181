package main

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the key bindings for the demo TUI.
type keyMap struct {
	Quit      key.Binding
	CycleMode key.Binding
	Tick      key.Binding
}

// keys holds the default key bindings used by the demo.
var keys = keyMap{
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	CycleMode: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cycle display mode")),
	Tick:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "advance mock task")),
}
