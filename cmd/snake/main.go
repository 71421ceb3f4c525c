// snake is a single-player Snake game for the terminal.
//
// Usage:
//
//	snake                - Play in the terminal
//	snake play           - Same as above
//	snake play --gui     - Play in a window (needs the ebiten build tag)
//	snake keys           - Show the key bindings
//	snake config         - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>     - Use a custom config file
//	--log-file <path>   - Write logs to a file (default: discard)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is the classic single-player game: steer the snake to the food,
grow with every bite and avoid the walls and your own tail.

Available commands:
  play     - Start a game (default)
  keys     - Show the key bindings
  config   - Print the effective configuration

Examples:
  snake
  snake play --seed 42
  snake play --config ./my-snake.yaml
  snake keys`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	bindPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration named by --config, or the first one found.
func loadConfig() (config.Config, error) {
	return config.Load(flagConfig)
}
