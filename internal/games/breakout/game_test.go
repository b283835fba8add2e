package breakout

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 12345
	return cfg
}

// scriptedInputs launches at frame 10 and sweeps the pointer back and forth.
func scriptedInputs(n int) []core.InputFrame {
	inputs := make([]core.InputFrame, n)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		inputs[i].PointerX = (i * 37) % testFieldW
		if i == 10 {
			inputs[i].Set(core.ActionLaunch)
		}
	}
	return inputs
}

func TestGameDeterminism(t *testing.T) {
	inputs := scriptedInputs(600)

	run := func() Snapshot {
		g := New()
		g.Reset(testConfig())
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Frame != 600 {
		t.Errorf("Frame = %d, expected 600", snap1.Frame)
	}
	if snap1.BlockCount != snap2.BlockCount {
		t.Errorf("BlockCount differs: %d vs %d", snap1.BlockCount, snap2.BlockCount)
	}
}

func TestGameSnapshotChangesWithSeed(t *testing.T) {
	a := New()
	a.Reset(testConfig())

	cfg := testConfig()
	cfg.Seed = 7
	b := New()
	b.Reset(cfg)

	sa, sb := a.Snapshot(), b.Snapshot()
	if sa.Hash() == sb.Hash() {
		t.Error("different seeds produced identical snapshot hashes")
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	state := g.State()
	if state.Frame != 0 {
		t.Errorf("Frame = %d, expected 0", state.Frame)
	}
	if state.Served {
		t.Error("puck should rest after Reset")
	}
	if state.BlocksLeft != 65 {
		t.Errorf("BlocksLeft = %d, expected 65", state.BlocksLeft)
	}
	if state.Cleared() {
		t.Error("fresh field should not be cleared")
	}
}

func TestGameLaunch(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	in := core.NewInputFrame()
	in.PointerX = 512
	g.Step(in)
	if g.State().Served {
		t.Fatal("puck served without a launch")
	}

	in.Set(core.ActionLaunch)
	res := g.Step(in)
	if !res.State.Served {
		t.Error("puck should be served after a launch")
	}
	if res.State.Frame != 2 {
		t.Errorf("Frame = %d, expected 2", res.State.Frame)
	}

	// Served on the launch frame, so it already moved off the paddle.
	_, by := g.Puck().Rect().MidBottom()
	_, ty := g.Paddle().Rect().MidTop()
	if by == ty {
		t.Error("served puck did not move on the launch frame")
	}
}

func TestGameStepOrder(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// The paddle moves before the resting puck snaps to it.
	in := core.NewInputFrame()
	in.PointerX = 0
	g.Step(in)

	bx, by := g.Puck().Rect().MidBottom()
	tx, ty := g.Paddle().Rect().MidTop()
	if bx != tx || by != ty {
		t.Errorf("puck midbottom = (%d,%d), expected paddle midtop (%d,%d)", bx, by, tx, ty)
	}
	if tx != 85 {
		t.Errorf("paddle center = %d, expected 85", tx)
	}
}

func TestGameDrawables(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	ds := g.Drawables()
	if len(ds) != 67 {
		t.Fatalf("len(Drawables()) = %d, expected 67", len(ds))
	}
	for i, d := range ds[:65] {
		if _, ok := d.(*Block); !ok {
			t.Errorf("drawable %d is %T, expected *Block", i, d)
		}
	}
	if _, ok := ds[65].(*Paddle); !ok {
		t.Errorf("drawable 65 is %T, expected *Paddle", ds[65])
	}
	if _, ok := ds[66].(*Puck); !ok {
		t.Errorf("drawable 66 is %T, expected *Puck", ds[66])
	}

	g.Field().Destroy(g.Field().Live()[0])
	if len(g.Drawables()) != 66 {
		t.Errorf("len(Drawables()) after destroy = %d, expected 66", len(g.Drawables()))
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []rune{PaddleChar, PuckChar, BlockChar} {
		if !strings.ContainsRune(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	if !strings.Contains(out, "launch") {
		t.Error("render should show the launch hint while the puck rests")
	}

	in := core.NewInputFrame()
	in.PointerX = 512
	in.Set(core.ActionLaunch)
	g.Step(in)
	g.Render(screen)
	if strings.Contains(screen.String(), "launch") {
		t.Error("launch hint should disappear once served")
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	screen := core.NewScreen(18, 6)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("expected a too-small message, got:\n%s", screen.String())
	}
}

func TestGameRegistered(t *testing.T) {
	g, err := registry.Create("breakout")
	if err != nil {
		t.Fatalf("Create(breakout) error: %v", err)
	}
	if g.ID() != "breakout" || g.Title() != "Breakout" {
		t.Errorf("registered game = %s/%s, expected breakout/Breakout", g.ID(), g.Title())
	}
}

func TestAutopilot(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	ap := NewAutopilot(g, 3)

	in := ap.Poll()
	if !in.Has(core.ActionLaunch) {
		t.Error("autopilot should launch a resting puck")
	}
	if in.PointerX != g.Puck().Rect().CenterX() {
		t.Errorf("PointerX = %d, expected puck center %d", in.PointerX, g.Puck().Rect().CenterX())
	}
	g.Step(in)

	in = ap.Poll()
	if in.Has(core.ActionLaunch) {
		t.Error("autopilot should not launch a served puck")
	}
	if in.Has(core.ActionQuit) {
		t.Error("autopilot quit before its limit")
	}

	ap.Poll()
	if in := ap.Poll(); !in.Has(core.ActionQuit) {
		t.Error("autopilot should quit after its limit")
	}
}
