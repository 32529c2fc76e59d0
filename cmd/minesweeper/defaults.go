package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/minesweeper/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration file. Save it to
~/.minesweeper/config.yaml or ./configs/minesweeper.yaml to customize.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
