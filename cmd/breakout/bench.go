package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/loop"
)

var (
	flagBenchFrames  int
	flagBenchUnpaced bool
	flagBenchRender  bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the game headless with an autopilot",
	Long: `Run the simulation without a display. The autopilot keeps the pointer
under the puck and launches it whenever it rests, so runs with the same
config and seed always end in the same state hash.

Examples:
  breakout bench
  breakout bench --frames 3000 --unpaced
  breakout bench --seed 42 --log-level debug
  breakout bench --frames 1200 --render`,
	Args: cobra.NoArgs,
	Run:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagBenchFrames, "frames", 600, "Number of frames to simulate")
	benchCmd.Flags().BoolVar(&flagBenchUnpaced, "unpaced", false, "Run as fast as possible instead of at the tick rate")
	benchCmd.Flags().BoolVar(&flagBenchRender, "render", false, "Print the final frame as plain text (80x24)")
}

func runBench(cmd *cobra.Command, _ []string) {
	if flagBenchFrames <= 0 {
		fail("--frames must be positive, got %d", flagBenchFrames)
	}

	logger, err := newLogger(os.Stderr, "breakout-bench")
	if err != nil {
		fail("%v", err)
	}

	cfg, err := loadRuntime(cmd, 0, 0)
	if err != nil {
		fail("%v", err)
	}
	if flagBenchUnpaced {
		cfg.TickRate = 0
	}

	game := breakout.New()
	game.Reset(cfg)
	l := loop.New(game, cfg, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	err = l.Run(ctx, breakout.NewAutopilot(game, flagBenchFrames), nil)
	elapsed := time.Since(start)
	if err != nil && !errors.Is(err, loop.ErrQuit) {
		logger.Warn("bench interrupted", "error", err)
	}

	state := game.State()
	snap := game.Snapshot()
	fmt.Printf("frames       %d\n", l.Frames())
	fmt.Printf("elapsed      %s\n", elapsed.Round(time.Millisecond))
	if elapsed > 0 {
		fmt.Printf("average fps  %.1f\n", float64(l.Frames())/elapsed.Seconds())
	}
	fmt.Printf("blocks left  %d/%d\n", state.BlocksLeft, cfg.Blocks)
	fmt.Printf("served       %t\n", state.Served)
	fmt.Printf("state hash   %016x\n", snap.Hash())

	if flagBenchRender {
		screen := core.NewScreen(80, 24)
		game.Render(screen)
		fmt.Println()
		fmt.Println(screen.String())
	}
}
