package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Playfield: BreakoutPlayfield{
			Width:  1024,
			Height: 800,
		},
		Field: BreakoutField{
			Blocks: 65,
			Seed:   0,
		},
		Loop: BreakoutLoop{
			TickRate:       60,
			FPSReportEvery: 300,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBreakoutYAML
}
