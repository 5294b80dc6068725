// Package storage provides SQLite-based persistence for puzzle solves.
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

// Store manages the SQLite database connection for solve history.
type Store struct {
	db *sql.DB
}

// SolveEntry represents a single completed puzzle.
type SolveEntry struct {
	ID            string // UUID assigned on save
	PuzzleID      string
	PiecesPerSide int
	Moves         int
	Duration      time.Duration
	Seed          int64
	Player        string // Local user or SSH session user
	CreatedAt     time.Time
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS solves (
			id TEXT PRIMARY KEY,
			puzzle_id TEXT NOT NULL,
			pieces_per_side INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			player TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_puzzle_id ON solves(puzzle_id);
		CREATE INDEX IF NOT EXISTS idx_solves_best ON solves(puzzle_id, pieces_per_side, moves, duration_ms);
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

// SaveSolve records a completed puzzle.
// Returns the UUID of the inserted record.
func (s *Store) SaveSolve(e SolveEntry) (string, error) {
	if e.PuzzleID == "" {
		return "", errors.New("storage: solve has no puzzle id")
	}
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO solves (id, puzzle_id, pieces_per_side, moves, duration_ms, seed, player)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, e.PuzzleID, e.PiecesPerSide, e.Moves, e.Duration.Milliseconds(), e.Seed, e.Player,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save solve: %w", err)
	}
	return id, nil
}

const solveColumns = `id, puzzle_id, pieces_per_side, moves, duration_ms, seed, player, created_at`

// TopSolves retrieves the best solves for a puzzle: fewest moves first, then
// fastest. A size of 0 includes every grid size.
func (s *Store) TopSolves(puzzleID string, size, limit int) ([]SolveEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+solveColumns+`
		 FROM solves
		 WHERE puzzle_id = ? AND (? = 0 OR pieces_per_side = ?)
		 ORDER BY moves ASC, duration_ms ASC, created_at ASC
		 LIMIT ?`,
		puzzleID, size, size, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var entries []SolveEntry
	for rows.Next() {
		e, err := scanSolve(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestSolve returns the best solve for a puzzle and size, or nil if none.
func (s *Store) BestSolve(puzzleID string, size int) (*SolveEntry, error) {
	entries, err := s.TopSolves(puzzleID, size, 1)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

// ClearSolves deletes all solves for the given puzzle.
func (s *Store) ClearSolves(puzzleID string) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE puzzle_id = ?", puzzleID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSolve(row scanner) (SolveEntry, error) {
	var e SolveEntry
	var durationMS int64
	var createdAt any
	if err := row.Scan(&e.ID, &e.PuzzleID, &e.PiecesPerSide, &e.Moves, &durationMS, &e.Seed, &e.Player, &createdAt); err != nil {
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	e.Duration = time.Duration(durationMS) * time.Millisecond
	e.CreatedAt = parseTime(createdAt)
	return e, nil
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

// PuzzleStats contains aggregated statistics for a puzzle.
type PuzzleStats struct {
	PuzzleID    string
	Solves      int
	FewestMoves int
	AvgMoves    float64
	Fastest     time.Duration
	LastSolved  time.Time
}

// Stats retrieves aggregated statistics for a specific puzzle.
func (s *Store) Stats(puzzleID string) (*PuzzleStats, error) {
	stats := &PuzzleStats{PuzzleID: puzzleID}

	var fastestMS int64
	var lastSolved any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(moves), 0), COALESCE(AVG(moves), 0),
		        COALESCE(MIN(duration_ms), 0), MAX(created_at)
		 FROM solves WHERE puzzle_id = ?`,
		puzzleID,
	).Scan(&stats.Solves, &stats.FewestMoves, &stats.AvgMoves, &fastestMS, &lastSolved)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get puzzle stats: %w", err)
	}
	stats.Fastest = time.Duration(fastestMS) * time.Millisecond
	stats.LastSolved = parseTime(lastSolved)

	return stats, nil
}

// AllStats retrieves statistics for every puzzle that has been solved.
func (s *Store) AllStats() (map[string]*PuzzleStats, error) {
	rows, err := s.db.Query(
		`SELECT puzzle_id, COUNT(*), MIN(moves), AVG(moves), MIN(duration_ms), MAX(created_at)
		 FROM solves
		 GROUP BY puzzle_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all puzzle stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PuzzleStats)
	for rows.Next() {
		var ps PuzzleStats
		var fastestMS int64
		var lastSolved any
		if err := rows.Scan(&ps.PuzzleID, &ps.Solves, &ps.FewestMoves, &ps.AvgMoves, &fastestMS, &lastSolved); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.Fastest = time.Duration(fastestMS) * time.Millisecond
		ps.LastSolved = parseTime(lastSolved)
		stats[ps.PuzzleID] = &ps
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
