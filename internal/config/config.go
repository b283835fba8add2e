// Package config provides YAML/TOML-based game configuration loading and
// playfield presets for the breakout platform.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Minimum playfield size that still yields non-zero paddle, block and puck sizes.
const (
	MinPlayfieldWidth  = 60
	MinPlayfieldHeight = 50
)

// BreakoutConfig contains all configuration for the Breakout game.
type BreakoutConfig struct {
	Playfield BreakoutPlayfield `yaml:"playfield" toml:"playfield"`
	Field     BreakoutField     `yaml:"field" toml:"field"`
	Loop      BreakoutLoop      `yaml:"loop" toml:"loop"`
}

// BreakoutPlayfield defines the simulation area in pixels.
type BreakoutPlayfield struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// BreakoutField defines the generated block layout.
type BreakoutField struct {
	Blocks int   `yaml:"blocks" toml:"blocks"`
	Seed   int64 `yaml:"seed" toml:"seed"`
}

// BreakoutLoop defines frame pacing and diagnostics.
type BreakoutLoop struct {
	TickRate       int `yaml:"tick_rate" toml:"tick_rate"`
	FPSReportEvery int `yaml:"fps_report_every" toml:"fps_report_every"`
}

// Validate checks that the config describes a playable field.
func (c BreakoutConfig) Validate() error {
	if c.Playfield.Width < MinPlayfieldWidth || c.Playfield.Height < MinPlayfieldHeight {
		return fmt.Errorf("config: playfield %dx%d is smaller than %dx%d",
			c.Playfield.Width, c.Playfield.Height, MinPlayfieldWidth, MinPlayfieldHeight)
	}
	if c.Field.Blocks < 0 {
		return fmt.Errorf("config: block count must not be negative, got %d", c.Field.Blocks)
	}
	if c.Loop.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.Loop.TickRate)
	}
	if c.Loop.FPSReportEvery <= 0 {
		return fmt.Errorf("config: fps_report_every must be positive, got %d", c.Loop.FPSReportEvery)
	}
	return nil
}

// Runtime builds the RuntimeConfig handed to a game for a terminal of the given size.
func (c BreakoutConfig) Runtime(screenW, screenH int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:        screenW,
		ScreenH:        screenH,
		FieldW:         c.Playfield.Width,
		FieldH:         c.Playfield.Height,
		TickRate:       c.Loop.TickRate,
		FPSReportEvery: c.Loop.FPSReportEvery,
		Blocks:         c.Field.Blocks,
		Seed:           c.Field.Seed,
	}
}

// Preset represents a named playfield size.
type Preset string

const (
	PresetStandard Preset = "standard" // 1024x800
	PresetClassic  Preset = "classic"  // 640x480, the first generation of the game
)

// ParsePreset converts a CLI value to a Preset. Empty means no preset.
func ParsePreset(name string) (Preset, error) {
	switch Preset(name) {
	case "":
		return "", nil
	case PresetStandard, PresetClassic:
		return Preset(name), nil
	default:
		return "", fmt.Errorf("config: unknown preset %q (want %q or %q)", name, PresetStandard, PresetClassic)
	}
}

// ApplyBreakoutPreset modifies the config based on a playfield preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset Preset) {
	switch preset {
	case PresetStandard:
		cfg.Playfield.Width = 1024
		cfg.Playfield.Height = 800
	case PresetClassic:
		cfg.Playfield.Width = 640
		cfg.Playfield.Height = 480
	}
}
