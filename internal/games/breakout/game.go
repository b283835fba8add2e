package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Visual characters for terminal rendering
const (
	PaddleChar = '█'
	PuckChar   = '●'
	BlockChar  = '▇'
)

// Minimum terminal size for a readable playfield.
const (
	minScreenW = 20
	minScreenH = 8
)

// Game implements the Breakout game logic. It owns the paddle, the puck and
// the block field; the puck only borrows the other two.
type Game struct {
	paddle *Paddle
	puck   *Puck
	field  *BlockField
	frame  int

	runtime core.RuntimeConfig
}

// New creates a new Breakout game instance. Call Reset before stepping it.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset builds a fresh field, paddle and resting puck from the runtime config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.frame = 0

	w, h := runtime.FieldW, runtime.FieldH
	g.field = GenerateField(runtime.Blocks, runtime.Seed, w, h)
	g.paddle = NewPaddle(w, h)
	g.puck = NewPuck(g.paddle, g.field, w, h)
}

// Step advances the game by one frame: a launch request serves the puck,
// then the paddle follows the pointer, then the puck moves.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame++

	if in.Has(core.ActionLaunch) {
		g.puck.Serve()
	}
	g.paddle.Update(in.PointerX)
	g.puck.Update()

	return core.StepResult{State: g.State()}
}

// Paddle returns the paddle.
func (g *Game) Paddle() *Paddle {
	return g.paddle
}

// Puck returns the puck.
func (g *Game) Puck() *Puck {
	return g.puck
}

// Field returns the block field.
func (g *Game) Field() *BlockField {
	return g.field
}

// Drawables returns blocks in layout order, then the paddle, then the puck.
func (g *Game) Drawables() []core.Drawable {
	out := make([]core.Drawable, 0, g.field.Len()+2)
	for _, b := range g.field.Live() {
		out = append(out, b)
	}
	return append(out, g.paddle, g.puck)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	w, h := g.runtime.FieldW, g.runtime.FieldH
	for _, d := range g.Drawables() {
		dst.FillScaled(d.Rect(), w, h, glyphFor(d), d.FillColor())
	}

	g.renderOverlay(dst)
}

func glyphFor(d core.Drawable) rune {
	switch d.(type) {
	case *Paddle:
		return PaddleChar
	case *Puck:
		return PuckChar
	default:
		return BlockChar
	}
}

// renderOverlay draws hints on the bottom row.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.field.Len() == 0:
		dst.DrawTextCentered(dst.Height()-1, "Field cleared!")
	case !g.puck.Served():
		dst.DrawTextCentered(dst.Height()-1, "Click or press SPACE to launch")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Frame:      g.frame,
		Served:     g.puck.Served(),
		BlocksLeft: g.field.Len(),
	}
}

// Register the game with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}
