// Package desktop runs the game in a native window with Ebitengine. The
// playfield is drawn at its pixel size and the real mouse drives the paddle.
package desktop

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/loop"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Window implements ebiten.Game around a loop.
type Window struct {
	loop   *loop.Loop
	game   registry.Game
	config core.RuntimeConfig
	input  core.InputFrame
	colors map[core.Color]color.Color
	quit   bool
}

// NewWindow resets game and prepares a window for it. It does not open anything.
func NewWindow(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (*Window, error) {
	colors, err := paletteColors()
	if err != nil {
		return nil, err
	}

	game.Reset(cfg)
	input := core.NewInputFrame()
	input.PointerX = cfg.FieldW / 2

	return &Window{
		loop:   loop.New(game, cfg, logger),
		game:   game,
		config: cfg,
		input:  input,
		colors: colors,
	}, nil
}

// paletteColors converts every palette entry to a color.Color.
func paletteColors() (map[core.Color]color.Color, error) {
	colors := make(map[core.Color]color.Color)
	for _, c := range core.Palette() {
		cc, err := colorful.Hex(c.Hex())
		if err != nil {
			return nil, fmt.Errorf("desktop: palette color %d: %w", c, err)
		}
		colors[c] = cc
	}
	return colors, nil
}

// Update polls the mouse and keyboard and runs one frame.
func (w *Window) Update() error {
	if ebiten.IsWindowBeingClosed() ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		w.input.Set(core.ActionQuit)
	}

	w.input.PointerX, _ = ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w.input.Set(core.ActionLaunch)
	}

	return w.frame()
}

// frame runs the loop with the collected input and clears it.
func (w *Window) frame() error {
	_, err := w.loop.Frame(w.input)
	w.input.Clear()

	if errors.Is(err, loop.ErrQuit) {
		w.quit = true
		return ebiten.Termination
	}
	return err
}

// Draw paints every drawable as a filled rectangle on black.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	for _, d := range w.game.Drawables() {
		r := d.Rect()
		fill, ok := w.colors[d.FillColor()]
		if !ok {
			fill = color.White
		}
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill, false)
	}

	state := w.game.State()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS %.0f  blocks %d", w.loop.FPS(), state.BlocksLeft))
	if !state.Served {
		ebitenutil.DebugPrintAt(screen, "Click to launch", w.config.FieldW/2-45, w.config.FieldH/2)
	}
}

// Layout keeps the logical screen at the playfield size.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.config.FieldW, w.config.FieldH
}

// Quit reports whether the player asked to leave.
func (w *Window) Quit() bool {
	return w.quit
}

// Run opens a window for game and blocks until it is closed.
// quit is true when the player closed the window or pressed Q.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (quit bool, err error) {
	w, err := NewWindow(game, cfg, logger)
	if err != nil {
		return false, err
	}

	ebiten.SetWindowSize(cfg.FieldW, cfg.FieldH)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowClosingHandled(true)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	} else {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}

	if err := ebiten.RunGame(w); err != nil {
		return w.Quit(), fmt.Errorf("desktop: %w", err)
	}
	return w.Quit(), nil
}
