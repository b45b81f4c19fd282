package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Place   key.Binding
	Cell    key.Binding
	PickX   key.Binding
	PickO   key.Binding
	NewGame key.Binding
	Quit    key.Binding
	Exit    key.Binding
	Yes     key.Binding
	No      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Place:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Cell:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "cell")),
		PickX:   key.NewBinding(key.WithKeys("x", "X"), key.WithHelp("x", "play X")),
		PickO:   key.NewBinding(key.WithKeys("o", "O"), key.WithHelp("o", "play O")),
		NewGame: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new game")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		Exit:    key.NewBinding(key.WithKeys("ctrl+c")),
		Yes:     key.NewBinding(key.WithKeys("y", "Y", "enter"), key.WithHelp("y", "yes")),
		No:      key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no")),
	}
}

// choiceKeys is the help shown on the mark selection screen.
type choiceKeys struct{ keyMap }

func (k choiceKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.PickX, k.PickO, k.Left, k.Place, k.Quit}
}

func (k choiceKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// boardKeys is the help shown while playing.
type boardKeys struct{ keyMap }

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Place, k.Cell, k.NewGame, k.Quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Place, k.Cell, k.NewGame, k.Quit},
	}
}

type confirmKeys struct{ keyMap }

func (k confirmKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No}
}

func (k confirmKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
