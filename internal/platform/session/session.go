// Package session wraps a game with the bookkeeping every host shares:
// recording finished rounds in the ledger and logging round lifecycle events.
package session

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/logging"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Event reports what a key symbol did to the session.
type Event int

const (
	EventNone      Event = iota
	EventUnchanged       // state unchanged: a turn, or a key the state machine ignored
	EventPaused          // Running -> Paused
	EventResumed         // Paused -> Running
	EventNewRound        // a new round replaced the previous one
	EventQuit            // the player asked to quit
)

// Session drives one game for a host.
type Session struct {
	game       *snake.Game
	store      *storage.Store
	logger     *log.Logger
	now        func() time.Time
	roundStart time.Time
}

// New creates a session for game. store and logger may be nil; now defaults
// to time.Now.
func New(game *snake.Game, store *storage.Store, logger *log.Logger, now func() time.Time) *Session {
	if logger == nil {
		logger = logging.Discard()
	}
	if now == nil {
		now = time.Now
	}
	s := &Session{
		game:       game,
		store:      store,
		logger:     logger,
		now:        now,
		roundStart: now(),
	}
	logger.Info("game started", "round", game.Round())
	return s
}

// Game returns the driven game.
func (s *Session) Game() *snake.Game {
	return s.game
}

// Key forwards a key symbol to the game and reports the resulting event.
func (s *Session) Key(a core.Action) Event {
	if a == core.ActionNone {
		return EventNone
	}

	prev := s.game.Snapshot()
	prevRound := s.game.Round()
	s.game.OnKey(a)

	switch {
	case s.game.QuitRequested():
		if prev.State != snake.StateOver {
			s.record(storage.EndQuit, prev)
		}
		s.logger.Info("quit", "score", prev.Score, "high_score", prev.HighScore)
		return EventQuit

	case s.game.Round() != prevRound:
		if prev.State != snake.StateOver {
			s.record(storage.EndRestart, prev)
		}
		s.roundStart = s.now()
		s.logger.Info("game started", "round", s.game.Round(), "high_score", s.game.HighScore())
		return EventNewRound
	}

	switch state := s.game.State(); {
	case state == prev.State:
		return EventUnchanged
	case state == snake.StatePaused:
		s.logger.Info("paused", "score", prev.Score, "ticks", prev.Tick)
		return EventPaused
	case state == snake.StateRunning:
		s.logger.Info("resumed", "score", prev.Score, "ticks", prev.Tick)
		return EventResumed
	}
	return EventNone
}

// Tick runs one tick pass and records the round if it ended.
func (s *Session) Tick() snake.TickOutcome {
	out := s.game.OnTick()
	switch out {
	case snake.TickCollided:
		snap := s.game.Snapshot()
		s.logger.Info("game over",
			"score", snap.Score,
			"length", snap.SnakeLen,
			"ticks", snap.Tick,
			"high_score", snap.HighScore,
		)
		s.record(storage.EndCollision, snap)
	case snake.TickAte:
		s.logger.Debug("food eaten", "score", s.game.Score(), "length", len(s.game.Snake()))
	}
	return out
}

// record appends a finished round to the ledger. Rounds that never ticked
// are skipped.
func (s *Session) record(reason storage.EndReason, snap snake.Snapshot) {
	if s.store == nil || snap.Tick == 0 {
		return
	}
	id, err := s.store.RecordRound(storage.Round{
		Score:     snap.Score,
		Length:    snap.SnakeLen,
		Ticks:     snap.Tick,
		EndReason: reason,
		StartedAt: s.roundStart,
		EndedAt:   s.now(),
	})
	if err != nil {
		s.logger.Error("could not record round", "error", err)
		return
	}
	s.logger.Debug("round recorded", "id", id, "reason", reason)
}
