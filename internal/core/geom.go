// Package core provides fundamental types and utilities for the breakout platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in playfield pixels.
// The origin is the top-left corner and y grows downward.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// CenterX returns the x-coordinate of the center.
func (r Rect) CenterX() int {
	return r.X + r.W/2
}

// MidTop returns the midpoint of the top edge.
func (r Rect) MidTop() (int, int) {
	return r.X + r.W/2, r.Y
}

// MidBottom returns the midpoint of the bottom edge.
func (r Rect) MidBottom() (int, int) {
	return r.X + r.W/2, r.Bottom()
}

// WithCenterX returns a copy moved horizontally so its center sits at x.
func (r Rect) WithCenterX(x int) Rect {
	r.X = x - r.W/2
	return r
}

// WithMidBottom returns a copy moved so its bottom midpoint sits at (x, y).
func (r Rect) WithMidBottom(x, y int) Rect {
	r.X = x - r.W/2
	r.Y = y - r.H
	return r
}

// Translate returns a copy shifted by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
