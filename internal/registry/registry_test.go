package registry

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                          { return g.id }
func (g *stubGame) Title() string                       { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)            {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Drawables() []core.Drawable          { return nil }
func (g *stubGame) Render(*core.Screen)                 {}
func (g *stubGame) State() core.GameState               { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Error("Exists(stub-a) should be true after Register")
	}
	if Exists("missing") {
		t.Error("Exists(missing) should be false")
	}

	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create(stub-a) error: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("Create(stub-a).ID() = %q, expected %q", g.ID(), "stub-a")
	}

	g2, _ := Create("stub-a")
	if g2 == g {
		t.Error("Create should return a new instance on every call")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) should return an error")
	}

	// List is sorted by ID and carries titles
	var ids []string
	for _, info := range List() {
		if info.ID == "stub-a" || info.ID == "stub-b" {
			ids = append(ids, info.ID)
			if info.Title != "Stub "+info.ID {
				t.Errorf("List title for %s = %q, expected %q", info.ID, info.Title, "Stub "+info.ID)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "stub-a" || ids[1] != "stub-b" {
		t.Errorf("List order = %v, expected [stub-a stub-b]", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("Register with a duplicate ID should panic")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}
