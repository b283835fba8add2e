// Package breakout implements a Breakout-style block breaker: a pointer-driven
// paddle, a puck with a fixed diagonal step, and a seeded field of blocks.
package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// entity is the shape shared by every object on the playfield.
type entity struct {
	rect core.Rect
}

// Rect returns the entity's bounding box in playfield pixels.
func (e *entity) Rect() core.Rect {
	return e.rect
}
