// Package storage provides SQLite-based persistence for round scores and
// per-shot history. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RoundEntry is one completed quiver: its total score and shot count.
type RoundEntry struct {
	ID         int64
	RoundID    string
	Difficulty string
	Score      int
	Shots      int
	CreatedAt  time.Time
}

// ShotEntry is one finalized shot within a round. Ring is 0 for misses.
type ShotEntry struct {
	ID         int64
	RoundID    string
	Difficulty string
	Ring       int
	Points     int
	Radial     float64
	Reason     string
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
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
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL UNIQUE,
			difficulty TEXT NOT NULL,
			score INTEGER NOT NULL,
			shots INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(difficulty, score DESC);

		CREATE TABLE IF NOT EXISTS shots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			ring INTEGER NOT NULL DEFAULT 0,
			points INTEGER NOT NULL DEFAULT 0,
			radial REAL NOT NULL DEFAULT 0,
			reason TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_shots_round ON shots(round_id);
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

// SaveRound records a completed round. Returns the ID of the inserted record.
func (s *Store) SaveRound(roundID, difficulty string, score, shots int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO rounds (round_id, difficulty, score, shots) VALUES (?, ?, ?, ?)",
		roundID, difficulty, score, shots,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveShot records one finalized shot.
func (s *Store) SaveShot(e ShotEntry) error {
	_, err := s.db.Exec(
		"INSERT INTO shots (round_id, difficulty, ring, points, radial, reason) VALUES (?, ?, ?, ?, ?, ?)",
		e.RoundID, e.Difficulty, e.Ring, e.Points, e.Radial, e.Reason,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save shot: %w", err)
	}
	return nil
}

// TopRounds retrieves the top N rounds for a difficulty, best score first.
func (s *Store) TopRounds(difficulty string, limit int) ([]RoundEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, round_id, difficulty, score, shots, created_at
		 FROM rounds
		 WHERE difficulty = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var entries []RoundEntry
	for rows.Next() {
		var e RoundEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RoundID, &e.Difficulty, &e.Score, &e.Shots, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// RoundShots retrieves the shot history of one round in firing order.
func (s *Store) RoundShots(roundID string) ([]ShotEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, round_id, difficulty, ring, points, radial, reason, created_at
		 FROM shots
		 WHERE round_id = ?
		 ORDER BY id ASC`,
		roundID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query shots: %w", err)
	}
	defer rows.Close()

	var entries []ShotEntry
	for rows.Next() {
		var e ShotEntry
		var createdAt any
		var reason sql.NullString
		if err := rows.Scan(&e.ID, &e.RoundID, &e.Difficulty, &e.Ring, &e.Points, &e.Radial, &reason, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if reason.Valid {
			e.Reason = reason.String
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the best round score for a difficulty.
// Returns 0 if no rounds exist.
func (s *Store) HighScore(difficulty string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM rounds WHERE difficulty = ?",
		difficulty,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// RoundStats contains aggregated statistics for one difficulty.
type RoundStats struct {
	Difficulty string
	Rounds     int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// StatsByDifficulty retrieves aggregated round statistics per difficulty.
func (s *Store) StatsByDifficulty() (map[string]*RoundStats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*), MAX(score), AVG(score), MAX(created_at)
		 FROM rounds
		 GROUP BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get round stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*RoundStats)
	for rows.Next() {
		var st RoundStats
		var lastPlayed any
		if err := rows.Scan(&st.Difficulty, &st.Rounds, &st.HighScore, &st.AvgScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseCreatedAt(lastPlayed)
		stats[st.Difficulty] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearRounds deletes all rounds and their shot history for a difficulty.
func (s *Store) ClearRounds(difficulty string) error {
	if _, err := s.db.Exec("DELETE FROM shots WHERE difficulty = ?", difficulty); err != nil {
		return fmt.Errorf("storage: cannot clear shots: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM rounds WHERE difficulty = ?", difficulty); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// parseCreatedAt handles the driver returning either time.Time or a string.
func parseCreatedAt(v any) time.Time {
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
