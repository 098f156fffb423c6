// Package storage provides SQLite-based persistence for finished matches.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// MatchRecord is the outcome of one finished match.
type MatchRecord struct {
	ID            int64
	MatchID       string
	Winner        string // "human" or "computer"
	HumanShots    int
	ComputerShots int
	HumanHits     int
	ComputerHits  int
	Turns         int
	BoardSize     int
	Seed          int64
	Duration      time.Duration
	CreatedAt     time.Time
}

// Stats contains aggregated results over all recorded matches.
type Stats struct {
	Matches       int
	HumanWins     int
	ComputerWins  int
	AvgHumanShots float64
	BestWinShots  int // Fewest human shots in a won match, 0 if none
	LastPlayed    time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			winner TEXT NOT NULL,
			human_shots INTEGER NOT NULL DEFAULT 0,
			computer_shots INTEGER NOT NULL DEFAULT 0,
			human_hits INTEGER NOT NULL DEFAULT 0,
			computer_hits INTEGER NOT NULL DEFAULT 0,
			turns INTEGER NOT NULL DEFAULT 0,
			board_size INTEGER NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_winner ON matches(winner);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
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

// SaveMatch records a finished match. A MatchID is generated if empty.
// Returns the stored match ID.
func (s *Store) SaveMatch(rec MatchRecord) (string, error) {
	if rec.MatchID == "" {
		rec.MatchID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, winner, human_shots, computer_shots, human_hits, computer_hits, turns, board_size, seed, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.MatchID,
		rec.Winner,
		rec.HumanShots,
		rec.ComputerShots,
		rec.HumanHits,
		rec.ComputerHits,
		rec.Turns,
		rec.BoardSize,
		rec.Seed,
		rec.Duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save match: %w", err)
	}

	return rec.MatchID, nil
}

const matchColumns = `id, match_id, winner, human_shots, computer_shots, human_hits, computer_hits,
	turns, board_size, seed, duration_ms, created_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (MatchRecord, error) {
	var rec MatchRecord
	var durationMS int64
	var createdAt any
	err := row.Scan(
		&rec.ID,
		&rec.MatchID,
		&rec.Winner,
		&rec.HumanShots,
		&rec.ComputerShots,
		&rec.HumanHits,
		&rec.ComputerHits,
		&rec.Turns,
		&rec.BoardSize,
		&rec.Seed,
		&durationMS,
		&createdAt,
	)
	if err != nil {
		return rec, err
	}
	rec.Duration = time.Duration(durationMS) * time.Millisecond
	rec.CreatedAt = parseTime(createdAt)
	return rec, nil
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

// MatchByID retrieves a match by its match ID. Returns nil if not found.
func (s *Store) MatchByID(matchID string) (*MatchRecord, error) {
	rec, err := scanMatch(s.db.QueryRow(
		`SELECT `+matchColumns+` FROM matches WHERE match_id = ?`,
		matchID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &rec, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		rec, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Stats aggregates all recorded matches.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	var bestWin sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(winner = 'human'), 0),
		        COALESCE(SUM(winner = 'computer'), 0),
		        COALESCE(AVG(human_shots), 0),
		        MIN(CASE WHEN winner = 'human' THEN human_shots END)
		 FROM matches`,
	).Scan(&stats.Matches, &stats.HumanWins, &stats.ComputerWins, &stats.AvgHumanShots, &bestWin)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	if bestWin.Valid {
		stats.BestWinShots = int(bestWin.Int64)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM matches ORDER BY created_at DESC, id DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// ClearHistory deletes all recorded matches.
func (s *Store) ClearHistory() error {
	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}
