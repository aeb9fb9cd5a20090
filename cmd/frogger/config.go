package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the embedded default configuration as YAML. Save it to
~/.frogger/configs/frogger.yaml or ./configs/frogger.yaml and edit it to
change rules, obstacles or layouts.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
