package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-vanilla/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

Files, the difficulty preset and flags are applied in the same order as
for play. The output can be saved and passed back with --config.

Examples:
  arcade config > ~/.arcade/configs/breakout.yaml
  arcade config --difficulty easy --sound`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	addPlayFlags(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
