package core

import "time"

// RuntimeConfig contains configuration passed to hosts at startup.
// The tick interval is fixed for the life of the process.
type RuntimeConfig struct {
	ScreenW      int           // Terminal width in characters
	ScreenH      int           // Terminal height in characters
	TickInterval time.Duration // Simulation tick period
	Seed         int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 100 * time.Millisecond,
		Seed:         0, // 0 means use current time in platform layer
	}
}
