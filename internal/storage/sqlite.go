// Package storage keeps a results ledger of finished matches in an in-memory
// SQLite database. Nothing is written to disk: the ledger lives as long as the
// process. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrClosed is returned when the store is used after Close.
var ErrClosed = errors.New("storage: store is closed")

// Store manages the SQLite connection for the results ledger.
type Store struct {
	db *sql.DB
}

// MatchResult is one finished game.
type MatchResult struct {
	ID          int64
	MatchID     string
	Session     string // Player name or SSH user
	Game        int    // 1-based game number within the match
	BestOf      int
	PlayerScore int
	AIScore     int
	Winner      string // "player" or "ai"
	Ticks       uint64
	CreatedAt   time.Time
}

// Tally summarizes a session's results.
type Tally struct {
	Wins   int
	Losses int
}

// Open creates an empty in-memory ledger.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database, so pin one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Test connection
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

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL,
			session TEXT NOT NULL,
			game INTEGER NOT NULL,
			best_of INTEGER NOT NULL,
			player_score INTEGER NOT NULL,
			ai_score INTEGER NOT NULL,
			winner TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_session ON results(session);
		CREATE INDEX IF NOT EXISTS idx_results_match ON results(match_id, game);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection, discarding the ledger.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// RecordMatch stores a finished game and returns its row ID.
func (s *Store) RecordMatch(r MatchResult) (int64, error) {
	if s.db == nil {
		return 0, ErrClosed
	}

	res, err := s.db.Exec(
		`INSERT INTO results
		 (match_id, session, game, best_of, player_score, ai_score, winner, ticks)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.MatchID, r.Session, r.Game, r.BestOf, r.PlayerScore, r.AIScore, r.Winner, int64(r.Ticks), //nolint:gosec // tick counts fit in int64
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record match: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentMatches returns the latest results, newest first.
// An empty session returns results for every session.
func (s *Store) RecentMatches(session string, limit int) ([]MatchResult, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, match_id, session, game, best_of, player_score, ai_score, winner, ticks, created_at
		 FROM results
		 WHERE ? = '' OR session = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		session, session, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []MatchResult
	for rows.Next() {
		var r MatchResult
		var ticks int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.MatchID, &r.Session, &r.Game, &r.BestOf,
			&r.PlayerScore, &r.AIScore, &r.Winner, &ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(max(ticks, 0))
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Tally counts wins and losses for a session.
func (s *Store) Tally(session string) (Tally, error) {
	if s.db == nil {
		return Tally{}, ErrClosed
	}

	var t Tally
	var wins, losses sql.NullInt64
	err := s.db.QueryRow(
		`SELECT SUM(winner = 'player'), SUM(winner = 'ai')
		 FROM results
		 WHERE session = ?`,
		session,
	).Scan(&wins, &losses)
	if err != nil {
		return t, fmt.Errorf("storage: cannot query tally: %w", err)
	}

	t.Wins = int(wins.Int64)
	t.Losses = int(losses.Int64)
	return t, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
