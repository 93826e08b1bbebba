package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pingpong/internal/core"
)

// KeyMap defines the key bindings for a match.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	BestOf3    key.Binding
	BestOf5    key.Binding
	BestOf7    key.Binding
	Results    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Pause, k.Results, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Pause},
		{k.Restart, k.BestOf3, k.BestOf5, k.BestOf7},
		{k.Results, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "down"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys(" ", "r"),
			key.WithHelp("space/r", "play again"),
		),
		BestOf3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "best of 3"),
		),
		BestOf5: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "best of 5"),
		),
		BestOf7: key.NewBinding(
			key.WithKeys("7"),
			key.WithHelp("7", "best of 7"),
		),
		Results: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "results"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
// Returns ActionNone for unbound keys.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.BestOf3):
		return core.ActionBestOf3
	case key.Matches(msg, k.BestOf5):
		return core.ActionBestOf5
	case key.Matches(msg, k.BestOf7):
		return core.ActionBestOf7
	case key.Matches(msg, k.Results):
		return core.ActionResults
	case key.Matches(msg, k.Screenshot):
		return core.ActionScreenshot
	}
	return core.ActionNone
}
