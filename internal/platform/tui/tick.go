// Package tui runs the game in a terminal with Bubble Tea: mouse and key
// input, a cached row renderer, and an SSH server that gives every session
// its own game.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
// A non-positive rate ticks as often as Bubble Tea delivers messages.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(core.FrameInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
