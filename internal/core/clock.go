package core

import "time"

// fpsWindow is the number of recent frames averaged by FrameClock.FPS.
const fpsWindow = 10

// FrameClock counts frames and keeps a rolling average frame rate.
// It does not sleep; pacing belongs to whoever drives the loop.
type FrameClock struct {
	frames int
	stamps []time.Time
}

// NewFrameClock creates a clock with no recorded frames.
func NewFrameClock() *FrameClock {
	return &FrameClock{
		stamps: make([]time.Time, 0, fpsWindow+1),
	}
}

// Tick records the end of a frame at the given instant.
func (c *FrameClock) Tick(now time.Time) {
	c.frames++
	if len(c.stamps) == fpsWindow+1 {
		copy(c.stamps, c.stamps[1:])
		c.stamps = c.stamps[:fpsWindow]
	}
	c.stamps = append(c.stamps, now)
}

// Frames returns the number of frames recorded so far.
func (c *FrameClock) Frames() int {
	return c.frames
}

// FPS returns the average frame rate over the last few frames,
// or 0 until two frames have been recorded.
func (c *FrameClock) FPS() float64 {
	if len(c.stamps) < 2 {
		return 0
	}
	elapsed := c.stamps[len(c.stamps)-1].Sub(c.stamps[0])
	if elapsed <= 0 {
		return 0
	}
	return float64(len(c.stamps)-1) / elapsed.Seconds()
}

// Due reports whether the current frame count is a multiple of every.
func (c *FrameClock) Due(every int) bool {
	return every > 0 && c.frames > 0 && c.frames%every == 0
}
