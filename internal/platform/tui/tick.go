// Package tui provides the Bubble Tea host for the snake game.
// It owns the tick clock, maps keys to game symbols and draws the board.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game tick.
// Gen identifies the clock run that armed the timer; ticks from an earlier
// run are stale and dropped.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickCmd returns a single-shot Bubble Tea command that fires one tick after interval.
func tickCmd(interval time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
