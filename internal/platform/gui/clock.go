// Package gui provides the ebiten window host for the snake game.
// Building it requires the ebiten build tag; without it Run reports that the
// window host is unavailable.
package gui

import (
	"errors"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// TPS is the window host's update rate.
const TPS = 60

// ErrUnavailable is returned by Run in builds without the ebiten tag.
var ErrUnavailable = errors.New("gui: window host requires building with the 'ebiten' tag")

// Options configures the window host.
type Options struct {
	Config config.Config
	Store  *storage.Store // optional session ledger
	Logger *log.Logger    // optional; nil discards
	Scale  int            // window pixels per board pixel; 0 means 2
}

// frameClock turns fixed-rate frame updates into game ticks.
type frameClock struct {
	every   int // frames per tick
	count   int
	running bool
}

// newFrameClock creates a clock ticking once per interval at tps updates per second.
func newFrameClock(interval time.Duration, tps int) frameClock {
	every := int(math.Round(interval.Seconds() * float64(tps)))
	return frameClock{every: max(every, 1)}
}

// advance counts one frame and reports whether a tick is due. A clock that
// was stopped waits a full period before its first tick.
func (c *frameClock) advance(running bool) bool {
	if !running {
		c.running = false
		c.count = 0
		return false
	}
	if !c.running {
		c.running = true
		c.count = 0
	}
	c.count++
	if c.count >= c.every {
		c.count = 0
		return true
	}
	return false
}
