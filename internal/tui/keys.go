package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Activate key.Binding
	Toggle   key.Binding
	Leave    key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "shift+tab"), key.WithHelp("↑/shift+tab", "prev")),
		Down:     key.NewBinding(key.WithKeys("down", "tab"), key.WithHelp("↓/tab", "next")),
		Activate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "press/submit")),
		Toggle:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "toggle cancelled")),
		Leave:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave input")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Activate, k.Toggle, k.Leave, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Activate}, {k.Toggle, k.Leave, k.Quit}}
}
