package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Autopilot is a scripted input source: the pointer tracks the puck, a
// resting puck is launched at once, and Quit fires after a frame budget.
type Autopilot struct {
	game   *Game
	frames int
	limit  int
}

// NewAutopilot creates an autopilot for g that asks to quit after limit
// frames. A non-positive limit never quits.
func NewAutopilot(g *Game, limit int) *Autopilot {
	return &Autopilot{game: g, limit: limit}
}

// Poll returns the input for the next frame.
func (a *Autopilot) Poll() core.InputFrame {
	a.frames++

	in := core.NewInputFrame()
	in.PointerX = a.game.Puck().Rect().CenterX()
	if !a.game.Puck().Served() {
		in.Set(core.ActionLaunch)
	}
	if a.limit > 0 && a.frames > a.limit {
		in.Set(core.ActionQuit)
	}
	return in
}
