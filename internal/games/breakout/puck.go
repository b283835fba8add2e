package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// PuckColor is the puck fill.
const PuckColor = core.ColorWhite

// Per-frame displacement magnitudes. The horizontal step follows yDirection
// and the vertical step follows xDirection.
const (
	stepX = 2
	stepY = 3
)

// Contact is the surface the puck last reacted to.
type Contact int

const (
	ContactPaddle Contact = iota
	ContactWall
	ContactCeiling
	ContactBlock
)

// String returns a human-readable name for the contact.
func (c Contact) String() string {
	switch c {
	case ContactPaddle:
		return "paddle"
	case ContactWall:
		return "wall"
	case ContactCeiling:
		return "ceiling"
	case ContactBlock:
		return "block"
	default:
		return "unknown"
	}
}

// Collision reports which check fired during a Puck.Update.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionFloor
	CollisionCeiling
	CollisionWall
	CollisionPaddle
	CollisionBlock
)

// Puck is the ball. It rests on the paddle until served, then moves by a
// fixed step each frame and reacts to the playfield edges, the paddle and
// blocks. It does not own the paddle or the field.
type Puck struct {
	entity
	served      bool
	xDirection  int
	yDirection  int
	lastContact Contact

	paddle *Paddle
	field  *BlockField
	fieldW int
	fieldH int
}

// NewPuck creates an unserved puck resting on the paddle.
func NewPuck(paddle *Paddle, field *BlockField, fieldW, fieldH int) *Puck {
	size := fieldH / 50
	p := &Puck{
		paddle: paddle,
		field:  field,
		fieldW: fieldW,
		fieldH: fieldH,
	}
	p.rect = core.NewRect(0, 0, size, size)
	p.rest()
	p.snapToPaddle()
	return p
}

// rest puts the puck back into its unserved state.
func (p *Puck) rest() {
	p.served = false
	p.xDirection = -1
	p.yDirection = -1
	p.lastContact = ContactPaddle
}

// Serve launches a resting puck. Serving a moving puck does nothing.
func (p *Puck) Serve() {
	p.served = true
}

// Served reports whether the puck is in free motion.
func (p *Puck) Served() bool {
	return p.served
}

// Directions returns the current (xDirection, yDirection) sign pair.
func (p *Puck) Directions() (int, int) {
	return p.xDirection, p.yDirection
}

// LastContact returns the last surface the puck reacted to.
func (p *Puck) LastContact() Contact {
	return p.lastContact
}

// FillColor implements core.Drawable.
func (p *Puck) FillColor() core.Color {
	return PuckColor
}

// Update runs one frame: at most one collision check fires, in the order
// floor, ceiling, wall, paddle, block; then the puck moves.
func (p *Puck) Update() Collision {
	hit := p.collide()
	if p.served {
		p.rect = p.rect.Translate(stepX*p.yDirection, stepY*p.xDirection)
	} else {
		p.snapToPaddle()
	}
	return hit
}

func (p *Puck) collide() Collision {
	r := p.rect
	switch {
	case r.Y > p.fieldH:
		p.rest()
		return CollisionFloor

	case r.Y <= 0:
		p.xDirection = -p.xDirection
		p.lastContact = ContactCeiling
		return CollisionCeiling

	case r.X <= 0 || r.Right() >= p.fieldW:
		p.yDirection = -p.yDirection
		p.lastContact = ContactWall
		return CollisionWall

	case p.lastContact != ContactPaddle && r.Intersects(p.paddle.Rect()):
		p.xDirection = -p.xDirection
		p.lastContact = ContactPaddle
		return CollisionPaddle
	}

	// Blocks are destroyed without changing direction.
	if b := p.field.FirstHit(r); b != nil {
		p.field.Destroy(b)
		p.lastContact = ContactBlock
		return CollisionBlock
	}
	return CollisionNone
}

// snapToPaddle places the puck's bottom midpoint on the paddle's top midpoint.
func (p *Puck) snapToPaddle() {
	p.rect = p.rect.WithMidBottom(p.paddle.Rect().MidTop())
}
