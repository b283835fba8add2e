package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config",
	Long: `Print the built-in YAML config. Save it as ~/.arcade/configs/breakout.yaml
or ./configs/breakout.yaml and edit it, or pass any copy with --config.

Example:
  breakout config > configs/breakout.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		//nolint:errcheck // Nothing useful to do if stdout is gone
		os.Stdout.Write(config.GetDefaultYAML())
	},
}
