// Package storage persists the leaderboard and round history in SQLite
// and user settings through gdata.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultKeep is how many ranked results survive each insert.
const DefaultKeep = 5

// Store manages the SQLite database connection.
type Store struct {
	db   *sql.DB
	keep int
}

// ScoreEntry is one ranked leaderboard row.
type ScoreEntry struct {
	ID        int64
	Name      string
	Score     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}
	// The SSH server shares one store across sessions; sqlite serialises writers anyway.
	db.SetMaxOpenConns(1)

	store := &Store{db: db, keep: DefaultKeep}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS leaderboard (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_leaderboard_top ON leaderboard(score DESC, id ASC);

		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			duration_secs REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordResult inserts a named result and prunes the table to the top
// DefaultKeep rows (score descending, earlier rows win ties).
func (s *Store) RecordResult(name string, score int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.Exec("INSERT INTO leaderboard (name, score) VALUES (?, ?)", name, score); err != nil {
		return fmt.Errorf("storage: cannot save result: %w", err)
	}
	if _, err := tx.Exec(
		`DELETE FROM leaderboard WHERE id NOT IN (
			SELECT id FROM leaderboard ORDER BY score DESC, id ASC LIMIT ?
		)`, s.keep,
	); err != nil {
		return fmt.Errorf("storage: cannot prune leaderboard: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit result: %w", err)
	}
	return nil
}

// Leaderboard returns up to limit ranked rows. limit <= 0 means all kept rows.
func (s *Store) Leaderboard(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = s.keep
	}

	rows, err := s.db.Query(
		`SELECT id, name, score, created_at
		 FROM leaderboard
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore returns the best ranked score, or 0 if there is none.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM leaderboard").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearLeaderboard deletes all ranked results. Round history is kept.
func (s *Store) ClearLeaderboard() error {
	if _, err := s.db.Exec("DELETE FROM leaderboard"); err != nil {
		return fmt.Errorf("storage: cannot clear leaderboard: %w", err)
	}
	return nil
}

// SaveRound records every finished round, named or not, for statistics.
func (s *Store) SaveRound(score int, duration time.Duration) error {
	if _, err := s.db.Exec(
		"INSERT INTO rounds (score, duration_secs) VALUES (?, ?)",
		score, duration.Seconds(),
	); err != nil {
		return fmt.Errorf("storage: cannot save round: %w", err)
	}
	return nil
}

// Stats contains aggregated round history.
type Stats struct {
	Rounds     int
	HighScore  int
	AvgScore   float64
	TotalTime  time.Duration
	LastPlayed time.Time
}

// RoundStats aggregates the round history.
func (s *Store) RoundStats() (*Stats, error) {
	stats := &Stats{}
	var secs float64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(duration_secs), 0)
		 FROM rounds`,
	).Scan(&stats.Rounds, &stats.HighScore, &stats.AvgScore, &secs)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get round stats: %w", err)
	}
	stats.TotalTime = time.Duration(secs * float64(time.Second))

	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM rounds ORDER BY id DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}
	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
