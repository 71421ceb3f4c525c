package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would run with, as YAML.

Search order: --config, ~/.snake/config.yaml, ./configs/snake.yaml, built-in defaults.
Redirect the output to a file to start a custom configuration.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		cmd.Printf("# source: %s\n", cfg.Source)
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
