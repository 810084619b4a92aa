package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game configuration",
	Long: `Print the built-in crossing.yaml.

Save the output as ~/.crossing/configs/crossing.yaml or ./configs/crossing.yaml
and edit it; keys left out keep their default values.

Examples:
  crossing config > ~/.crossing/configs/crossing.yaml
  crossing play crossing --config ./my-crossing.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
	return err
}
