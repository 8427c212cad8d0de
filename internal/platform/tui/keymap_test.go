package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockspiral/internal/core"
)

func TestGridKeyMapAction(t *testing.T) {
	km := DefaultGridKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionPlace},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionPlace},
		{"a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, core.ActionPlace},
		{"c", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")}, core.ActionClear},
		{"r", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.ActionReload},
		{"t", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")}, core.ActionTable},
		{"?", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")}, core.ActionHelp},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionNone},
		{"z", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}
