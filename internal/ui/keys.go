package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap wires the per-line controls: cursor movement, the four rating
// deltas, the bold toggle, help and quit.
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	AddFull    key.Binding
	RemoveFull key.Binding
	AddHalf    key.Binding
	RemoveHalf key.Binding
	ToggleBold key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		AddFull: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "add 1 star"),
		),
		RemoveFull: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "remove 1 star"),
		),
		AddHalf: key.NewBinding(
			key.WithKeys(">", "."),
			key.WithHelp(">", "add 0.5 star"),
		),
		RemoveHalf: key.NewBinding(
			key.WithKeys("<", ","),
			key.WithHelp("<", "remove 0.5 star"),
		),
		ToggleBold: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle bold"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddFull, k.RemoveFull, k.AddHalf, k.RemoveHalf, k.ToggleBold, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.ToggleBold},
		{k.AddFull, k.RemoveFull, k.AddHalf, k.RemoveHalf},
		{k.Help, k.Quit},
	}
}
