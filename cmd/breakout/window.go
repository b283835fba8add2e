package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/desktop"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window [game]",
	Short: "Play in a native window",
	Long: `Open a window the size of the playfield and play with the real mouse.

Controls:
  Mouse          - Move the paddle
  Release/Space  - Launch the puck
  Q/Esc/close    - Quit

Examples:
  breakout window
  breakout window --preset classic --fps 120`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	gameID := gameArg(args)

	logger, err := newLogger(os.Stderr, "breakout")
	if err != nil {
		fail("%v", err)
	}

	cfg, err := loadRuntime(cmd, 0, 0)
	if err != nil {
		fail("%v", err)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	logger.Info("opening window", "game", gameID, "width", cfg.FieldW, "height", cfg.FieldH, "seed", cfg.Seed)
	quit, err := desktop.Run(game, cfg, logger)
	if err != nil {
		fail("running game: %v", err)
	}
	if quit {
		logger.Info("quit requested")
		os.Exit(1)
	}
}
