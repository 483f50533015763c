package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Enter      key.Binding
	Stop       key.Binding
	Focus      key.Binding
	CopyPath   key.Binding
	Terminal   key.Binding
	Parent     key.Binding
	Open       key.Binding
	AddRoot    key.Binding
	ClearRoots key.Binding
	External   key.Binding
	Find       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search / open"),
		),
		Stop: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "stop search"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch focus"),
		),
		CopyPath: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy path"),
		),
		Terminal: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "terminal here"),
		),
		Parent: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "terminal at parent"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open with default app"),
		),
		AddRoot: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add root"),
		),
		ClearRoots: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "reset roots"),
		),
		External: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "toggle external disks"),
		),
		Find: key.NewBinding(
			key.WithKeys("/", "i"),
			key.WithHelp("/", "edit keyword"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
