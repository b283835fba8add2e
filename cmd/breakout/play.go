package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. The playfield is scaled onto the
terminal; the mouse column steers the paddle.

Controls:
  Mouse        - Move the paddle
  Click/Space  - Launch the puck
  Left/Right   - Nudge the paddle
  Q/Ctrl+C     - Quit

The terminal is owned by the game while it runs, so logs go to --log-file.

Examples:
  breakout play
  breakout play --seed 7
  breakout play --config ./breakout.toml --log-file breakout.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := gameArg(args)

	if !registry.Exists(gameID) {
		fail("unknown game %q\nRun 'breakout list' to see available games.", gameID)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg, err := loadRuntime(cmd, width, height)
	if err != nil {
		fail("%v", err)
	}

	var logOut io.Writer = io.Discard
	var logFile *os.File
	if flagLogFile != "" {
		logFile, err = os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fail("cannot open log file: %v", err)
		}
		logOut = logFile
	}

	logger, err := newLogger(logOut, "breakout")
	if err != nil {
		fail("%v", err)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	logger.Info("starting", "game", gameID, "width", cfg.FieldW, "height", cfg.FieldH, "seed", cfg.Seed)
	quit, runErr := tui.Run(game, cfg, logger)

	// Close the log before a potential exit
	if logFile != nil {
		//nolint:errcheck // Best-effort close on the way out
		logFile.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
	if quit {
		os.Exit(1)
	}
}
