// Package registry maps game ids to factories. The breakout package
// registers itself from init, and the CLI and the SSH server create a fresh
// instance per run or session by id.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Game is a frame-stepped simulation the drivers can run. It holds no
// terminal, window or clock; the loop feeds it input and paints its output.
type Game interface {
	// ID is the registry key, e.g. "breakout".
	ID() string

	// Title is the display name shown by list and in window titles.
	Title() string

	// Reset rebuilds the playfield from the config: size, block count, seed.
	Reset(cfg core.RuntimeConfig)

	// Step runs one frame with the pointer position and any launch request.
	Step(in core.InputFrame) core.StepResult

	// Drawables returns the live entities in paint order, in playfield pixels.
	// Pixel frontends draw these directly.
	Drawables() []core.Drawable

	// Render draws the current game state into the provided screen buffer,
	// scaled from playfield pixels to cells.
	Render(dst *core.Screen)

	// State summarizes the frame count, serve state and blocks left.
	State() core.GameState
}

// GameInfo names a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh, not yet Reset game.
type Factory func() Game

type entry struct {
	info GameInfo
	new  Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a factory under id. It panics if id is taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, taken := entries[id]; taken {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{
		info: GameInfo{ID: id, Title: f().Title()},
		new:  f,
	}
}

// List returns every registered id with its title, sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		infos = append(infos, e.info)
	}
	slices.SortFunc(infos, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return infos
}

// Create returns a new game for id, or an error naming the unknown id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.new(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
