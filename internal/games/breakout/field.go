package breakout

import (
	"math/rand"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BlocksPerRow is the number of blocks laid out before wrapping.
const BlocksPerRow = 13

// BlockField holds the live blocks in layout order.
type BlockField struct {
	blocks []*Block
}

// GenerateField lays out count blocks for a fieldW x fieldH playfield.
// Tiers come from a source seeded with seed, so the same arguments always
// produce the same field. Blocks fill rows of BlocksPerRow left to right,
// starting one block in from the top-left corner.
func GenerateField(count int, seed int64, fieldW, fieldH int) *BlockField {
	rng := rand.New(rand.NewSource(seed)) //#nosec G404 -- layout, not security
	bw, bh := fieldW/15, fieldH/25

	f := &BlockField{blocks: make([]*Block, 0, count)}
	var prev core.Rect
	for i := 0; i < count; i++ {
		tier := Tiers[rng.Intn(len(Tiers))]

		var rect core.Rect
		switch {
		case i == 0:
			rect = core.NewRect(bw, bh, bw, bh)
		case i%BlocksPerRow == 0:
			rect = core.NewRect(bw, (i/BlocksPerRow+1)*bh, bw, bh)
		default:
			rect = core.NewRect(prev.Right(), prev.Y, bw, bh)
		}

		b := &Block{tier: tier}
		b.rect = rect
		f.blocks = append(f.blocks, b)
		prev = rect
	}
	return f
}

// Live returns the remaining blocks in layout order.
// The slice is owned by the field and changes when a block is destroyed.
func (f *BlockField) Live() []*Block {
	return f.blocks
}

// Len returns the number of live blocks.
func (f *BlockField) Len() int {
	return len(f.blocks)
}

// FirstHit returns the first live block, in layout order, that intersects r.
func (f *BlockField) FirstHit(r core.Rect) *Block {
	for _, b := range f.blocks {
		if b.rect.Intersects(r) {
			return b
		}
	}
	return nil
}

// Destroy removes b from the live set. Destroying a block twice is a no-op.
func (f *BlockField) Destroy(b *Block) {
	for i, live := range f.blocks {
		if live == b {
			f.blocks = append(f.blocks[:i], f.blocks[i+1:]...)
			b.destroyed = true
			return
		}
	}
}
