package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

//go:embed defaults/snake.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/snake.yaml.
func Default() Config {
	return Config{
		TickMS: 100,
		Seed:   0,
		Board:  snake.DefaultBoard(),
		Food: FoodConfig{
			RetryLimit: 1000,
		},
		Rules: RulesConfig{
			NewGameWhilePaused: false,
		},
		Keys: KeyConfig{
			Up:      []string{"up", "w"},
			Down:    []string{"down", "s"},
			Left:    []string{"left", "a"},
			Right:   []string{"right", "d"},
			Pause:   []string{"p"},
			NewGame: []string{"space"},
			Quit:    []string{"esc", "q", "ctrl+c"},
		},
		Source: SourceBuiltin,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
