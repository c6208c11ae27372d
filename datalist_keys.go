package vlist

import "github.com/ayn2op/vlist/keybind"

// DataListKeyMap holds the key bindings of a DataList. Up and Down move
// along the scroll axis of vertical lists and across it for horizontal ones.
type DataListKeyMap struct {
	Up       keybind.Keybind
	Down     keybind.Keybind
	Left     keybind.Keybind
	Right    keybind.Keybind
	PageUp   keybind.Keybind
	PageDown keybind.Keybind
	Top      keybind.Keybind
	Bottom   keybind.Keybind
	Select   keybind.Keybind
}

func DefaultDataListKeyMap() DataListKeyMap {
	return DataListKeyMap{
		Up: keybind.NewKeybind(
			keybind.WithKeys("up", "k"),
			keybind.WithHelp("↑/k", "up"),
		),
		Down: keybind.NewKeybind(
			keybind.WithKeys("down", "j"),
			keybind.WithHelp("↓/j", "down"),
		),
		Left: keybind.NewKeybind(
			keybind.WithKeys("left", "h"),
			keybind.WithHelp("←/h", "left"),
		),
		Right: keybind.NewKeybind(
			keybind.WithKeys("right", "l"),
			keybind.WithHelp("→/l", "right"),
		),
		PageUp: keybind.NewKeybind(
			keybind.WithKeys("pgup", "ctrl+b"),
			keybind.WithHelp("pgup", "page up"),
		),
		PageDown: keybind.NewKeybind(
			keybind.WithKeys("pgdn", "ctrl+f"),
			keybind.WithHelp("pgdn", "page down"),
		),
		Top: keybind.NewKeybind(
			keybind.WithKeys("home", "g"),
			keybind.WithHelp("g/home", "first"),
		),
		Bottom: keybind.NewKeybind(
			keybind.WithKeys("end", "G"),
			keybind.WithHelp("G/end", "last"),
		),
		Select: keybind.NewKeybind(
			keybind.WithKeys("enter"),
			keybind.WithHelp("enter", "select"),
		),
	}
}

// ShortHelp returns the most used bindings.
func (k DataListKeyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.Up, k.Down, k.PageDown, k.Select}
}

// FullHelp returns all bindings grouped by purpose.
func (k DataListKeyMap) FullHelp() [][]keybind.Keybind {
	return [][]keybind.Keybind{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Select},
	}
}
