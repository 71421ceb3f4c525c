// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// ErrInvalid is returned when a configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// LedgerKey opens the session ledger in the terminal. It is reserved and
// cannot be bound to a game action.
const LedgerKey = "tab"

// Config contains all configuration for the snake game.
type Config struct {
	TickMS int         `yaml:"tick_ms"`
	Seed   int64       `yaml:"seed"` // 0 = seed from the clock
	Board  snake.Board `yaml:"board"`
	Food   FoodConfig  `yaml:"food"`
	Rules  RulesConfig `yaml:"rules"`
	Keys   KeyConfig   `yaml:"keys"`

	// Source records where the configuration was loaded from.
	Source string `yaml:"-"`
}

// FoodConfig defines food placement parameters.
type FoodConfig struct {
	RetryLimit int `yaml:"retry_limit"` // 0 = sample until a free cell is hit
}

// RulesConfig holds optional rule switches.
type RulesConfig struct {
	NewGameWhilePaused bool `yaml:"new_game_while_paused"`
}

// KeyConfig lists the key names bound to each input symbol.
type KeyConfig struct {
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Pause   []string `yaml:"pause"`
	NewGame []string `yaml:"new_game"`
	Quit    []string `yaml:"quit"`
}

// For returns the key names bound to an action.
func (k KeyConfig) For(a core.Action) []string {
	switch a {
	case core.ActionUp:
		return k.Up
	case core.ActionDown:
		return k.Down
	case core.ActionLeft:
		return k.Left
	case core.ActionRight:
		return k.Right
	case core.ActionPauseToggle:
		return k.Pause
	case core.ActionNewGame:
		return k.NewGame
	case core.ActionQuit:
		return k.Quit
	default:
		return nil
	}
}

// TickInterval returns the tick period.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// ApplySeed overrides the configured seed. A zero seed leaves it unchanged.
func (c *Config) ApplySeed(seed int64) {
	if seed != 0 {
		c.Seed = seed
	}
}

// GameOptions builds engine options from the configuration.
func (c Config) GameOptions() snake.Options {
	return snake.Options{
		Board:              c.Board,
		Seed:               c.Seed,
		FoodRetryLimit:     c.Food.RetryLimit,
		NewGameWhilePaused: c.Rules.NewGameWhilePaused,
	}
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.TickMS <= 0 {
		return fmt.Errorf("%w: tick_ms must be positive, got %d", ErrInvalid, c.TickMS)
	}
	if err := c.Board.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Food.RetryLimit < 0 {
		return fmt.Errorf("%w: food.retry_limit must not be negative", ErrInvalid)
	}

	owner := make(map[string]core.Action)
	for _, a := range core.Actions {
		keys := c.Keys.For(a)
		if len(keys) == 0 {
			return fmt.Errorf("%w: no key bound to %s", ErrInvalid, a)
		}
		for _, k := range keys {
			if k == "" {
				return fmt.Errorf("%w: empty key name bound to %s", ErrInvalid, a)
			}
			if k == LedgerKey {
				return fmt.Errorf("%w: key %q is reserved for the session ledger", ErrInvalid, k)
			}
			if prev, ok := owner[k]; ok && prev != a {
				return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalid, k, prev, a)
			}
			owner[k] = a
		}
	}
	return nil
}

// Runtime returns the host runtime settings for a screen of the given size.
// A non-positive dimension falls back to the default 80x24 screen.
func (c Config) Runtime(screenW, screenH int) core.RuntimeConfig {
	rt := core.DefaultConfig()
	if screenW > 0 && screenH > 0 {
		rt.ScreenW = screenW
		rt.ScreenH = screenH
	}
	rt.TickInterval = c.TickInterval()
	rt.Seed = c.Seed
	return rt
}
