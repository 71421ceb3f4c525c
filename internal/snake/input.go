package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// OnKey applies a key symbol through the state machine gate.
// Unmapped symbols are ignored.
func (g *Game) OnKey(a core.Action) {
	switch a {
	case core.ActionQuit:
		g.quitRequested = true
		g.clockRunning = false
		return
	case core.ActionNewGame:
		if g.state != StatePaused || g.opts.NewGameWhilePaused {
			g.NewGame()
		}
		return
	}

	switch g.state {
	case StateRunning:
		if a == core.ActionPauseToggle {
			g.pause()
			return
		}
		if dir, ok := directionFor(a); ok {
			g.turn(dir)
		}
	case StatePaused:
		if a == core.ActionPauseToggle {
			g.resume()
		}
	case StateOver:
		// Only a new game leaves Over.
	}
}

// turn buffers a new heading for the next move. The check is against the
// heading of the last move, so several turns between ticks cannot fold the
// head back onto the neck.
func (g *Game) turn(dir Direction) {
	if dir == g.direction.Opposite() {
		return
	}
	g.nextDir = dir
}

func (g *Game) pause() {
	g.state = StatePaused
	g.clockRunning = false
}

func (g *Game) resume() {
	g.state = StateRunning
	g.clockRunning = true
}

// directionFor maps a movement symbol to its direction.
func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return 0, false
}
