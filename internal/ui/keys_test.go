package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestDefaultKeyMapBindings(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		press   string
	}{
		{"up", keys.Up, "up"},
		{"down", keys.Down, "down"},
		{"launch", keys.Launch, "enter"},
		{"preview", keys.Preview, "ctrl+p"},
		{"quit esc", keys.Quit, "esc"},
		{"quit ctrl+c", keys.Quit, "ctrl+c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tea.KeyMsg(tea.Key{Type: keyType(tt.press)})
			if !key.Matches(msg, tt.binding) {
				t.Errorf("%s should match binding", tt.press)
			}
		})
	}
}

func keyType(name string) tea.KeyType {
	switch name {
	case "up":
		return tea.KeyUp
	case "down":
		return tea.KeyDown
	case "enter":
		return tea.KeyEnter
	case "ctrl+p":
		return tea.KeyCtrlP
	case "esc":
		return tea.KeyEsc
	case "ctrl+c":
		return tea.KeyCtrlC
	}
	return tea.KeyRunes
}

func TestHelpCoversAllBindings(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
	if len(keys.FullHelp()) == 0 {
		t.Error("FullHelp should not be empty")
	}
}
