package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// It is built once at startup and handed to each game instance explicitly.
type RuntimeConfig struct {
	ScreenW int // Terminal width in characters (0 outside the terminal)
	ScreenH int // Terminal height in characters

	FieldW int // Playfield width in pixels
	FieldH int // Playfield height in pixels

	TickRate       int   // Simulation ticks per second (default 60)
	FPSReportEvery int   // Frames between FPS log lines
	Blocks         int   // Number of blocks in the generated field
	Seed           int64 // Seed for the block layout; fixed for reproducible layouts
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:        80,
		ScreenH:        24,
		FieldW:         1024,
		FieldH:         800,
		TickRate:       60,
		FPSReportEvery: 300,
		Blocks:         65,
		Seed:           0,
	}
}

// FrameInterval returns the duration of one frame at the given tick rate.
// A non-positive rate means "unpaced" and yields zero.
func FrameInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(tickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Frame      int  // Frames simulated since Reset
	Served     bool // Whether the puck is in free motion
	BlocksLeft int  // Live blocks remaining
}

// Cleared reports whether every block has been destroyed.
func (s GameState) Cleared() bool {
	return s.BlocksLeft == 0
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
