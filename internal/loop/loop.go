// Package loop drives a game frame by frame: it applies input, advances the
// simulation, keeps the frame clock and reports the frame rate.
package loop

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// ErrQuit is returned once the input asks to leave the game.
var ErrQuit = errors.New("loop: quit requested")

// InputSource yields the input for the next frame.
type InputSource interface {
	Poll() core.InputFrame
}

// Presenter receives the game after every simulated frame.
type Presenter interface {
	Present(g registry.Game)
}

// Loop owns one game instance and its frame clock.
type Loop struct {
	game        registry.Game
	clock       *core.FrameClock
	logger      *log.Logger
	reportEvery int
	tickRate    int

	now func() time.Time
}

// New creates a loop for g. The game must already be Reset.
func New(g registry.Game, cfg core.RuntimeConfig, logger *log.Logger) *Loop {
	return &Loop{
		game:        g,
		clock:       core.NewFrameClock(),
		logger:      logger,
		reportEvery: cfg.FPSReportEvery,
		tickRate:    cfg.TickRate,
		now:         time.Now,
	}
}

// Game returns the driven game.
func (l *Loop) Game() registry.Game {
	return l.game
}

// Frame runs one frame with the given input. A quit request stops the frame
// before the game is stepped and returns ErrQuit.
func (l *Loop) Frame(in core.InputFrame) (core.StepResult, error) {
	if in.Has(core.ActionQuit) {
		return core.StepResult{State: l.game.State()}, ErrQuit
	}

	res := l.game.Step(in)
	l.clock.Tick(l.now())

	if l.clock.Due(l.reportEvery) {
		l.logger.Info("frame rate", "frame", l.clock.Frames(), "fps", l.clock.FPS())
	}
	return res, nil
}

// FPS returns the rolling average frame rate.
func (l *Loop) FPS() float64 {
	return l.clock.FPS()
}

// Frames returns the number of frames run so far.
func (l *Loop) Frames() int {
	return l.clock.Frames()
}

// Run polls src, steps the game and hands each frame to out until the
// input quits or ctx is done. Frames are paced to the tick rate; a
// non-positive tick rate runs as fast as possible. out may be nil.
func (l *Loop) Run(ctx context.Context, src InputSource, out Presenter) error {
	var tick <-chan time.Time
	if interval := core.FrameInterval(l.tickRate); interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := l.Frame(src.Poll()); err != nil {
			return err
		}
		if out != nil {
			out.Present(l.game)
		}
	}
}
