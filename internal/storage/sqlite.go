// Package storage provides the session ledger of finished rounds.
// Uses the pure-Go modernc.org/sqlite driver on an in-memory database, so the
// ledger lives exactly as long as the process.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// EndReason describes how a round finished.
type EndReason string

const (
	EndCollision EndReason = "collision" // the snake hit a wall or itself
	EndRestart   EndReason = "restart"   // a new game replaced the round
	EndQuit      EndReason = "quit"      // the player quit mid-round
)

// ErrInvalidRound is returned when a round cannot be recorded.
var ErrInvalidRound = errors.New("storage: invalid round")

// Store manages the in-memory SQLite ledger.
type Store struct {
	db *sql.DB
}

// Round is one finished round.
type Round struct {
	ID        string
	Score     int
	Length    int
	Ticks     uint64
	EndReason EndReason
	StartedAt time.Time
	EndedAt   time.Time
}

// Duration returns the wall-clock length of the round.
func (r Round) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// Stats contains aggregated statistics for the session.
type Stats struct {
	Rounds       int
	HighScore    int
	AvgScore     float64
	TotalScore   int64
	TotalTicks   int64
	LongestSnake int
	LastPlayed   time.Time
}

// Open creates an empty in-memory ledger and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			started_at INTEGER NOT NULL,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_score ON rounds(score DESC);
		CREATE INDEX IF NOT EXISTS idx_rounds_ended_at ON rounds(ended_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection and discards the ledger.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRound appends a finished round. An empty ID is filled with a new UUID.
// Returns the round ID.
func (s *Store) RecordRound(r Round) (string, error) {
	if r.Score < 0 || r.Length < 0 {
		return "", fmt.Errorf("%w: negative score or length", ErrInvalidRound)
	}
	if r.EndReason == "" {
		return "", fmt.Errorf("%w: missing end reason", ErrInvalidRound)
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.EndedAt.IsZero() {
		r.EndedAt = time.Now()
	}
	if r.StartedAt.IsZero() {
		r.StartedAt = r.EndedAt
	}

	_, err := s.db.Exec(
		`INSERT INTO rounds (id, score, length, ticks, end_reason, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Score, r.Length, int64(r.Ticks), string(r.EndReason),
		r.StartedAt.UnixNano(), r.EndedAt.UnixNano(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot record round: %w", err)
	}

	return r.ID, nil
}

// Rounds retrieves the most recent rounds, newest first.
func (s *Store) Rounds(limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, score, length, ticks, end_reason, started_at, ended_at
		 FROM rounds
		 ORDER BY ended_at DESC, seq DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		r, err := scanRound(rows)
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// Best returns the highest-scoring round, the earliest one on ties.
// Reports false if no rounds were recorded.
func (s *Store) Best() (Round, bool, error) {
	row := s.db.QueryRow(
		`SELECT id, score, length, ticks, end_reason, started_at, ended_at
		 FROM rounds
		 ORDER BY score DESC, seq ASC
		 LIMIT 1`,
	)

	r, err := scanRound(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Round{}, false, nil
	}
	if err != nil {
		return Round{}, false, err
	}
	return r, true, nil
}

// Stats retrieves aggregated statistics for the session.
func (s *Store) Stats() (Stats, error) {
	var stats Stats
	var lastPlayed sql.NullInt64

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(score), 0), COALESCE(SUM(ticks), 0),
		        COALESCE(MAX(length), 0), MAX(ended_at)
		 FROM rounds`,
	).Scan(&stats.Rounds, &stats.HighScore, &stats.AvgScore,
		&stats.TotalScore, &stats.TotalTicks, &stats.LongestSnake, &lastPlayed)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	if lastPlayed.Valid {
		stats.LastPlayed = time.Unix(0, lastPlayed.Int64)
	}
	return stats, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRound(sc rowScanner) (Round, error) {
	var r Round
	var ticks, started, ended int64
	var reason string

	if err := sc.Scan(&r.ID, &r.Score, &r.Length, &ticks, &reason, &started, &ended); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return r, err
		}
		return r, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	r.Ticks = uint64(ticks)
	r.EndReason = EndReason(reason)
	r.StartedAt = time.Unix(0, started)
	r.EndedAt = time.Unix(0, ended)
	return r, nil
}
