package breakout

// Snapshot contains the complete simulation state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Frame       uint64
	PaddleX     int
	PuckX       int
	PuckY       int
	Served      bool
	XDirection  int
	YDirection  int
	LastContact int

	// Live blocks, flattened: each block is 3 ints (X, Y, Tier)
	BlockCount int
	BlockData  []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	live := g.field.Live()
	blockData := make([]int, 0, len(live)*3)
	for _, b := range live {
		blockData = append(blockData, b.rect.X, b.rect.Y, int(b.tier))
	}

	puck := g.puck.Rect()
	return Snapshot{
		Frame:       uint64(g.frame), //#nosec G115 -- frame count is always positive
		PaddleX:     g.paddle.Rect().X,
		PuckX:       puck.X,
		PuckY:       puck.Y,
		Served:      g.puck.served,
		XDirection:  g.puck.xDirection,
		YDirection:  g.puck.yDirection,
		LastContact: int(g.puck.lastContact),
		BlockCount:  len(live),
		BlockData:   blockData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.PaddleX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PuckX)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PuckY)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.XDirection)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.YDirection)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LastContact) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BlockCount)  //#nosec G115 -- hash computation
	if snap.Served {
		h = h*31 + 1
	}

	for _, v := range snap.BlockData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
