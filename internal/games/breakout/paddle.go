package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// PaddleColor is the paddle fill.
const PaddleColor = core.ColorGray

// Paddle is the player's bat. Only its horizontal center ever moves.
type Paddle struct {
	entity
	fieldW int
}

// NewPaddle creates a paddle sized for a fieldW x fieldH playfield,
// centered horizontally with its vertical center at 4/5 of the height.
func NewPaddle(fieldW, fieldH int) *Paddle {
	w, h := fieldW/6, fieldH/50
	centerY := (fieldH / 5) * 4

	p := &Paddle{fieldW: fieldW}
	p.rect = core.NewRect(0, centerY-h/2, w, h).WithCenterX(fieldW / 2)
	return p
}

// Update moves the paddle center to pointerX, clamped so the paddle stays
// inside [0, fieldW]. For an odd width the right half is one pixel wider.
func (p *Paddle) Update(pointerX int) {
	left := p.rect.W / 2
	right := p.rect.W - left
	p.rect = p.rect.WithCenterX(core.Clamp(pointerX, left, p.fieldW-right))
}

// FillColor implements core.Drawable.
func (p *Paddle) FillColor() core.Color {
	return PaddleColor
}
