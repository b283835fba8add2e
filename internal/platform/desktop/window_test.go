package desktop

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

func newTestWindow(t *testing.T) (*Window, *breakout.Game) {
	t.Helper()

	g := breakout.New()
	w, err := NewWindow(g, core.DefaultConfig(), log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewWindow error: %v", err)
	}
	return w, g
}

func TestPaletteColors(t *testing.T) {
	colors, err := paletteColors()
	if err != nil {
		t.Fatalf("paletteColors error: %v", err)
	}

	r, g, b, _ := colors[core.ColorGray].RGBA()
	if r>>8 != 192 || g>>8 != 192 || b>>8 != 192 {
		t.Errorf("gray = (%d,%d,%d), expected (192,192,192)", r>>8, g>>8, b>>8)
	}
	if len(colors) != len(core.Palette()) {
		t.Errorf("converted %d colors, expected %d", len(colors), len(core.Palette()))
	}
}

func TestWindowFrame(t *testing.T) {
	w, g := newTestWindow(t)

	w.input.PointerX = 0
	w.input.Set(core.ActionLaunch)
	if err := w.frame(); err != nil {
		t.Fatalf("frame error: %v", err)
	}
	if !g.State().Served {
		t.Error("launch should serve the puck")
	}
	if w.input.Has(core.ActionLaunch) {
		t.Error("input should be cleared after a frame")
	}
	if got := g.Paddle().Rect().CenterX(); got != 85 {
		t.Errorf("paddle center = %d, expected 85", got)
	}

	w.input.Set(core.ActionQuit)
	if err := w.frame(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("quit frame error = %v, expected ebiten.Termination", err)
	}
	if !w.Quit() {
		t.Error("Quit() = false after a quit frame")
	}
}

func TestWindowLayout(t *testing.T) {
	w, _ := newTestWindow(t)
	if lw, lh := w.Layout(300, 200); lw != 1024 || lh != 800 {
		t.Errorf("Layout = %dx%d, expected 1024x800", lw, lh)
	}
}
