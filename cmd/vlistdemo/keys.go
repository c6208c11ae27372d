package main

import "github.com/ayn2op/vlist/keybind"

// keyMap holds the demo's own bindings. The list bindings are appended for
// help.
type keyMap struct {
	Add     keybind.Keybind
	Delete  keybind.Keybind
	Reverse keybind.Keybind
	Help    keybind.Keybind
	Quit    keybind.Keybind

	list interface {
		ShortHelp() []keybind.Keybind
		FullHelp() [][]keybind.Keybind
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Add: keybind.NewKeybind(
			keybind.WithKeys("a", "insert"),
			keybind.WithHelp("a", "add"),
		),
		Delete: keybind.NewKeybind(
			keybind.WithKeys("d", "delete"),
			keybind.WithHelp("d", "delete"),
		),
		Reverse: keybind.NewKeybind(
			keybind.WithKeys("r"),
			keybind.WithHelp("r", "reverse"),
		),
		Help: keybind.NewKeybind(
			keybind.WithKeys("?"),
			keybind.WithHelp("?", "more"),
		),
		Quit: keybind.NewKeybind(
			keybind.WithKeys("q", "ctrl+c", "esc"),
			keybind.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []keybind.Keybind {
	short := k.list.ShortHelp()
	return append(short, k.Add, k.Delete, k.Help, k.Quit)
}

func (k keyMap) FullHelp() [][]keybind.Keybind {
	full := k.list.FullHelp()
	return append(full, []keybind.Keybind{k.Add, k.Delete, k.Reverse}, []keybind.Keybind{k.Help, k.Quit})
}
