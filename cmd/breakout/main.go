// breakout is a block breaker played with the mouse, in the terminal, in a
// native window, or over SSH.
//
// Usage:
//
//	breakout play [game]     - Play in the terminal
//	breakout window [game]   - Play in a native window
//	breakout serve           - Start SSH server for remote play
//	breakout field           - Print the generated block layout
//	breakout bench           - Run the game headless with an autopilot
//	breakout list            - List available games
//	breakout config          - Print the default config
//
// Global flags:
//
//	--fps <rate>        - Override the tick rate (default: from config, 60)
//	--seed <value>      - Override the block layout seed
//	--config <path>     - Load a YAML or TOML config file
//	--preset <name>     - Playfield preset: standard, classic
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Log destination for the terminal game
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"

	// Import games to register them
	_ "github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// defaultGame is played when no game id is given.
const defaultGame = "breakout"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagPreset   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - Break blocks with a mouse-driven paddle",
	Long: `Breakout is a single-screen block breaker. Move the pointer to steer
the paddle, release the mouse button to launch the puck, and clear the field.

Available commands:
  play     - Play in the terminal
  window   - Play in a native window
  serve    - Start SSH server for remote play
  field    - Print the generated block layout
  bench    - Run headless with an autopilot
  list     - Show all available games
  config   - Print the default config

Examples:
  breakout play
  breakout window --preset classic
  breakout play --seed 42 --log-file breakout.log
  breakout serve --ssh :2222
  breakout bench --frames 3000 --unpaced`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second); overrides the config")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Block layout seed; overrides the config")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Playfield preset: standard, classic")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for the terminal game (logs are discarded otherwise)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(fieldCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(configCmd)
}

// loadRuntime resolves the config file, preset and flag overrides into a
// RuntimeConfig for a terminal of the given size.
func loadRuntime(cmd *cobra.Command, screenW, screenH int) (core.RuntimeConfig, error) {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return core.RuntimeConfig{}, err
	}

	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return core.RuntimeConfig{}, err
	}
	config.ApplyBreakoutPreset(&cfg, preset)

	// Flags only override the config when given explicitly
	if cmd.Flags().Changed("fps") {
		cfg.Loop.TickRate = flagFPS
	}
	if cmd.Flags().Changed("seed") {
		cfg.Field.Seed = flagSeed
	}

	if err := cfg.Validate(); err != nil {
		return core.RuntimeConfig{}, err
	}
	return cfg.Runtime(screenW, screenH), nil
}

// newLogger creates a logger writing to w at the level given by --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// fail prints an error and exits with status 1.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// gameArg returns the game id from the arguments, or the default game.
func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultGame
}
