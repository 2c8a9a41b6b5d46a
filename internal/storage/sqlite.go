// Package storage provides SQLite-based persistence for cached opening
// guesses and the log of finished solver sessions.
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

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Opening is a precomputed first guess for one variant. Fingerprint
// identifies the word lists it was computed from, so editing a list
// invalidates the entry.
type Opening struct {
	VariantID   string
	Fingerprint string
	Guess       string
	WorstCase   int
	CreatedAt   time.Time
}

// Outcome is how a session ended.
type Outcome string

const (
	OutcomeSolved Outcome = "solved"
	OutcomeFailed Outcome = "failed"
)

// Solve records one finished session.
type Solve struct {
	ID        int64
	VariantID string
	Hard      bool
	Outcome   Outcome
	Answer    string // empty when the session failed
	Guesses   []string
	CreatedAt time.Time
}

// Rounds returns the number of guesses played.
func (s Solve) Rounds() int { return len(s.Guesses) }

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
		CREATE TABLE IF NOT EXISTS openings (
			variant_id TEXT NOT NULL,
			fingerprint TEXT NOT NULL,
			guess TEXT NOT NULL,
			worst_case INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (variant_id, fingerprint)
		);

		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			variant_id TEXT NOT NULL,
			hard INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			answer TEXT NOT NULL DEFAULT '',
			guesses TEXT NOT NULL,
			rounds INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_variant_id ON solves(variant_id);
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

// SaveOpening stores an opening guess, replacing any previous entry for the
// same variant and word lists.
func (s *Store) SaveOpening(o Opening) error {
	_, err := s.db.Exec(
		`INSERT INTO openings (variant_id, fingerprint, guess, worst_case)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (variant_id, fingerprint)
		 DO UPDATE SET guess = excluded.guess, worst_case = excluded.worst_case, created_at = CURRENT_TIMESTAMP`,
		o.VariantID, o.Fingerprint, o.Guess, o.WorstCase,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save opening: %w", err)
	}
	return nil
}

// Opening returns the cached opening, or nil if there is none.
func (s *Store) Opening(variantID, fingerprint string) (*Opening, error) {
	o := Opening{VariantID: variantID, Fingerprint: fingerprint}
	var createdAt any

	err := s.db.QueryRow(
		`SELECT guess, worst_case, created_at
		 FROM openings
		 WHERE variant_id = ? AND fingerprint = ?`,
		variantID, fingerprint,
	).Scan(&o.Guess, &o.WorstCase, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query opening: %w", err)
	}
	o.CreatedAt = parseTime(createdAt)
	return &o, nil
}

// ClearOpenings deletes cached openings for a variant, or for every variant
// when variantID is empty.
func (s *Store) ClearOpenings(variantID string) error {
	var err error
	if variantID == "" {
		_, err = s.db.Exec("DELETE FROM openings")
	} else {
		_, err = s.db.Exec("DELETE FROM openings WHERE variant_id = ?", variantID)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear openings: %w", err)
	}
	return nil
}

// SaveSolve records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSolve(sv Solve) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO solves (variant_id, hard, outcome, answer, guesses, rounds)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sv.VariantID, sv.Hard, string(sv.Outcome), sv.Answer, strings.Join(sv.Guesses, " "), len(sv.Guesses),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentSolves returns the latest sessions, newest first. An empty variantID
// matches every variant.
func (s *Store) RecentSolves(variantID string, limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, variant_id, hard, outcome, answer, guesses, created_at
		 FROM solves
		 WHERE ? = '' OR variant_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		variantID, variantID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var sv Solve
		var outcome, guesses string
		var createdAt any
		if err := rows.Scan(&sv.ID, &sv.VariantID, &sv.Hard, &outcome, &sv.Answer, &guesses, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sv.Outcome = Outcome(outcome)
		sv.Guesses = strings.Fields(guesses)
		sv.CreatedAt = parseTime(createdAt)
		solves = append(solves, sv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return solves, nil
}

// ClearSolves deletes the session log for a variant.
func (s *Store) ClearSolves(variantID string) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE variant_id = ?", variantID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

// VariantStats contains aggregated statistics for a variant.
type VariantStats struct {
	VariantID  string
	Games      int
	Solved     int
	AvgRounds  float64 // over solved games
	BestRounds int     // fewest guesses in a solved game, 0 if none
	LastPlayed time.Time
	// Distribution maps guess count to the number of solved games.
	Distribution map[int]int
}

// GetVariantStats retrieves aggregated statistics for one variant.
func (s *Store) GetVariantStats(variantID string) (*VariantStats, error) {
	stats := &VariantStats{VariantID: variantID, Distribution: make(map[int]int)}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'solved' THEN 1 ELSE 0 END), 0),
		        COALESCE(AVG(CASE WHEN outcome = 'solved' THEN rounds END), 0),
		        COALESCE(MIN(CASE WHEN outcome = 'solved' THEN rounds END), 0),
		        MAX(created_at)
		 FROM solves WHERE variant_id = ?`,
		variantID,
	).Scan(&stats.Games, &stats.Solved, &stats.AvgRounds, &stats.BestRounds, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get variant stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	rows, err := s.db.Query(
		`SELECT rounds, COUNT(*) FROM solves
		 WHERE variant_id = ? AND outcome = 'solved'
		 GROUP BY rounds`,
		variantID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get distribution: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rounds, n int
		if err := rows.Scan(&rounds, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan distribution row: %w", err)
		}
		stats.Distribution[rounds] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// PlayedVariants returns the IDs of variants with at least one logged
// session, sorted.
func (s *Store) PlayedVariants() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT variant_id FROM solves ORDER BY variant_id`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list variants: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return ids, nil
}

// parseTime handles the driver returning either time.Time or a string.
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
