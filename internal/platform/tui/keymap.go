package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-vanilla/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Run     key.Binding
	Dismiss key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Run, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Run, k.Dismiss},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Run: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "run"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", " ", "esc"),
			key.WithHelp("enter/esc", "close alert"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// direction returns the movement key a message maps to, or KeyNone.
func (k KeyMap) direction(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, k.Left):
		return core.KeyLeft
	case key.Matches(msg, k.Right):
		return core.KeyRight
	default:
		return core.KeyNone
	}
}
