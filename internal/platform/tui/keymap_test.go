package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pingpong/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"w", runeKey("w"), core.ActionUp},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"s", runeKey("s"), core.ActionDown},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"p", runeKey("p"), core.ActionPause},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionRestart},
		{"r", runeKey("r"), core.ActionRestart},
		{"3", runeKey("3"), core.ActionBestOf3},
		{"5", runeKey("5"), core.ActionBestOf5},
		{"7", runeKey("7"), core.ActionBestOf7},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionResults},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot},
		{"q", runeKey("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound 4", runeKey("4"), core.ActionNone},
		{"unbound x", runeKey("x"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp() should not be empty")
	}

	total := 0
	for _, group := range keys.FullHelp() {
		total += len(group)
	}
	if total != 10 {
		t.Errorf("FullHelp() lists %d bindings, expected 10", total)
	}
}
