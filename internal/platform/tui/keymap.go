package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// KeyMap defines the key bindings for a game session.
type KeyMap struct {
	Launch key.Binding
	Left   key.Binding
	Right  key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Launch, k.Left, k.Right, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Launch, k.Left, k.Right},
		{k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Launch: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space/click", "launch"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "paddle left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "paddle right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// nudgeSteps is how many key presses move the pointer across the whole field.
const nudgeSteps = 40

// MapKey applies a key press to the input frame. Arrow keys nudge the
// pointer within [0, fieldW]. Returns true if the key did anything.
func (k KeyMap) MapKey(msg tea.KeyMsg, frame *core.InputFrame, fieldW int) bool {
	step := core.Max(fieldW/nudgeSteps, 1)

	switch {
	case key.Matches(msg, k.Quit):
		frame.Set(core.ActionQuit)
	case key.Matches(msg, k.Launch):
		frame.Set(core.ActionLaunch)
	case key.Matches(msg, k.Left):
		frame.PointerX = core.Clamp(frame.PointerX-step, 0, fieldW)
	case key.Matches(msg, k.Right):
		frame.PointerX = core.Clamp(frame.PointerX+step, 0, fieldW)
	default:
		return false
	}
	return true
}

// cellToPixel maps a terminal column to the playfield pixel at the column's center.
func cellToPixel(col, cells, pixels int) int {
	if cells <= 0 {
		return 0
	}
	return (2*col + 1) * pixels / (2 * cells)
}
