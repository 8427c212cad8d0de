package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockspiral/internal/core"
)

// GridKeyMap defines the key bindings for the grid view.
type GridKeyMap struct {
	Place  key.Binding
	Clear  key.Binding
	Reload key.Binding
	Table  key.Binding
	Up     key.Binding
	Down   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GridKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Place, k.Clear, k.Table, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GridKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Place, k.Clear, k.Reload},
		{k.Table, k.Up, k.Down},
		{k.Help, k.Quit},
	}
}

// DefaultGridKeyMap returns default key bindings.
func DefaultGridKeyMap() GridKeyMap {
	return GridKeyMap{
		Place: key.NewBinding(
			key.WithKeys(" ", "enter", "a"),
			key.WithHelp("space/enter", "add block"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c", "x"),
			key.WithHelp("c", "clear"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r", "ctrl+r"),
			key.WithHelp("r", "reload"),
		),
		Table: key.NewBinding(
			key.WithKeys("t", "tab"),
			key.WithHelp("t", "blocks table"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a grid action.
// Scroll keys map to ActionNone; the caller forwards them to the table.
func (k GridKeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Place):
		return core.ActionPlace
	case key.Matches(msg, k.Clear):
		return core.ActionClear
	case key.Matches(msg, k.Reload):
		return core.ActionReload
	case key.Matches(msg, k.Table):
		return core.ActionTable
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	}
	return core.ActionNone
}
