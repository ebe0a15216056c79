package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileylov/sortable/sortable"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Home   key.Binding
	End    key.Binding
	Grab   key.Binding
	Cancel key.Binding
	Done   key.Binding
	Lock   key.Binding
	Add    key.Binding
	Delete key.Binding
	Layout key.Binding
	Copy   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Home:   key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home/g", "first")),
		End:    key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end/G", "last")),
		Grab:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "grab/drop")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Done:   key.NewBinding(key.WithKeys("enter", "x"), key.WithHelp("enter/x", "toggle done")),
		Lock:   key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "lock item")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Delete: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Layout: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "layout")),
		Copy:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy order")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Grab, k.Up, k.Down, k.Cancel, k.Add, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Home, k.End},
		{k.Grab, k.Cancel, k.Done, k.Lock},
		{k.Add, k.Delete, k.Layout, k.Copy},
		{k.Help, k.Quit},
	}
}

// engineKey maps a key press to the keys the list reacts to.
func (k keyMap) engineKey(msg tea.KeyMsg) (sortable.Key, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return sortable.KeyArrowUp, true
	case key.Matches(msg, k.Down):
		return sortable.KeyArrowDown, true
	case key.Matches(msg, k.Left):
		return sortable.KeyArrowLeft, true
	case key.Matches(msg, k.Right):
		return sortable.KeyArrowRight, true
	case key.Matches(msg, k.Home):
		return sortable.KeyHome, true
	case key.Matches(msg, k.End):
		return sortable.KeyEnd, true
	case key.Matches(msg, k.Grab):
		return sortable.KeySpace, true
	case key.Matches(msg, k.Cancel):
		return sortable.KeyEscape, true
	}
	return sortable.KeyOther, false
}
