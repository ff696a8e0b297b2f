// arcade is a terminal Breakout game.
//
// Usage:
//
//	arcade                   - Play (same as "arcade play")
//	arcade play              - Play in the terminal
//	arcade simulate          - Run a headless game with an autopilot
//	arcade config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - Preset: easy, normal, hard
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-vanilla/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Breakout in your terminal",
	Long: `arcade is a single-screen Breakout game for the terminal.

Bounce the ball off the paddle and clear all bricks before your lives run out.

Available commands:
  play      - Play in the terminal (default)
  simulate  - Run a headless game with an autopilot
  config    - Print the effective configuration

Examples:
  arcade
  arcade play --sound --sprite ./ball.png
  arcade simulate --frames 20000 --seed-offset 12
  arcade config --difficulty hard`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: no logs)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)
	addPlayFlags(playCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration from files and flags.
// It returns the config and a description of its source.
func loadConfig(cmd *cobra.Command) (config.BreakoutConfig, string, error) {
	cfg, source, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return cfg, source, err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, source, err
	}
	config.ApplyBreakoutPreset(&cfg, preset)

	flags := cmd.Flags()
	if flags.Changed("sprite") {
		cfg.Sprite.Path = flagSprite
	}
	if flags.Changed("sound") {
		cfg.Sound.Enabled = flagSound
	}

	if err := cfg.Validate(); err != nil {
		return cfg, source, fmt.Errorf("config from %s: %w", source, err)
	}
	return cfg, source, nil
}
