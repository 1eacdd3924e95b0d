package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the application-wide bindings. They are checked before the
// editor sees a key.
type KeyMap struct {
	Save key.Binding
	Open key.Binding
	New  key.Binding
	Menu key.Binding
	Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Open: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open")),
		New:  key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new")),
		Menu: key.NewBinding(key.WithKeys("f10", "alt+f"), key.WithHelp("f10", "file menu")),
		Quit: key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
}
