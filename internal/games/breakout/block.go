package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Tier is a block's difficulty class. Values are not contiguous.
type Tier int

const (
	TierWeakest   Tier = 0
	TierWeak      Tier = 1
	TierStrong    Tier = 3
	TierStrongest Tier = 4
)

// Tiers lists every tier; random draws index this slice.
var Tiers = [...]Tier{TierWeakest, TierWeak, TierStrong, TierStrongest}

var tierColors = [...]core.Color{
	TierWeakest:   core.ColorGreen,
	TierWeak:      core.ColorYellow,
	TierStrong:    core.ColorOrange,
	TierStrongest: core.ColorRed,
}

func init() {
	for _, t := range Tiers {
		if t.Color() == core.ColorDefault {
			panic(fmt.Sprintf("breakout: tier %s has no color", t))
		}
	}
}

// Color returns the fill color for the tier.
func (t Tier) Color() core.Color {
	if t < 0 || int(t) >= len(tierColors) {
		return core.ColorDefault
	}
	return tierColors[t]
}

// String returns a human-readable name for the tier.
func (t Tier) String() string {
	switch t {
	case TierWeakest:
		return "weakest"
	case TierWeak:
		return "weak"
	case TierStrong:
		return "strong"
	case TierStrongest:
		return "strongest"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// Block is a static obstacle. Its only change is being destroyed by the puck.
type Block struct {
	entity
	tier      Tier
	destroyed bool
}

// Tier returns the block's tier.
func (b *Block) Tier() Tier {
	return b.tier
}

// Destroyed reports whether the puck has removed this block.
func (b *Block) Destroyed() bool {
	return b.destroyed
}

// FillColor implements core.Drawable.
func (b *Block) FillColor() core.Color {
	return b.tier.Color()
}
