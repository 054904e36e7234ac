// Package storage provides SQLite-based persistence for the high score and run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/flappy-plane/internal/plane"
)

const keyHighScore = "high_score"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunEntry represents one finished run.
type RunEntry struct {
	ID         int64
	Difficulty string
	Score      int
	Level      int
	Duration   time.Duration
	Cause      string
	CreatedAt  time.Time
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
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			difficulty TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			cause TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_difficulty ON runs(difficulty);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(difficulty, score DESC);
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

// LoadHighScore returns the saved high score.
// The boolean is false when no high score was ever saved.
func (s *Store) LoadHighScore() (int, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM meta WHERE key = ?", keyHighScore).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	score, err := strconv.Atoi(value)
	if err != nil {
		return 0, false, fmt.Errorf("storage: corrupt high score %q: %w", value, err)
	}
	return score, true, nil
}

// SaveHighScore stores score unless a higher one is already saved.
// Several SSH sessions share one store, so a session holding a stale
// high score must not lower it.
func (s *Store) SaveHighScore(score int) error {
	_, err := s.db.Exec(
		`INSERT INTO meta (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		 WHERE CAST(meta.value AS INTEGER) < CAST(excluded.value AS INTEGER)`,
		keyHighScore, strconv.Itoa(score),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// RecordRun implements plane.RunRecorder.
func (s *Store) RecordRun(r plane.RunResult) error {
	_, err := s.SaveRun(r)
	return err
}

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r plane.RunResult) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (difficulty, score, level, duration_ms, cause) VALUES (?, ?, ?, ?, ?)",
		r.Difficulty, r.Score, r.Level, r.Duration.Milliseconds(), r.Cause,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Ensure Store satisfies the game's persistence interfaces
var (
	_ plane.HighScoreStore = (*Store)(nil)
	_ plane.RunRecorder    = (*Store)(nil)
)

// TopRuns retrieves the best N runs, optionally filtered by difficulty.
// An empty difficulty means all tiers. Results are ordered by score descending.
func (s *Store) TopRuns(difficulty string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, difficulty, score, level, duration_ms, cause, created_at
		 FROM runs
		 WHERE ? = '' OR difficulty = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		difficulty, difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RecentRuns retrieves the most recent N runs across all difficulties.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, difficulty, score, level, duration_ms, cause, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent runs: %w", err)
	}
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]RunEntry, error) {
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var durationMs int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Difficulty, &e.Score, &e.Level, &durationMs, &e.Cause, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationMs) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearRuns deletes the run history of one difficulty, or all of it when
// difficulty is empty. The saved high score is kept.
func (s *Store) ClearRuns(difficulty string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE ? = '' OR difficulty = ?", difficulty, difficulty)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// RunStats contains aggregated statistics for one difficulty.
type RunStats struct {
	Difficulty string
	RunsCount  int
	BestScore  int
	BestLevel  int
	AvgScore   float64
	TotalTime  time.Duration
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics for a difficulty.
func (s *Store) Stats(difficulty string) (*RunStats, error) {
	stats := &RunStats{Difficulty: difficulty}
	var totalMs int64

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(MAX(level), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(duration_ms), 0)
		 FROM runs WHERE difficulty = ?`,
		difficulty,
	).Scan(&stats.RunsCount, &stats.BestScore, &stats.BestLevel, &stats.AvgScore, &totalMs)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	stats.TotalTime = time.Duration(totalMs) * time.Millisecond

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE difficulty = ? ORDER BY id DESC LIMIT 1`,
		difficulty,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// AllStats retrieves statistics for every difficulty that has been played.
func (s *Store) AllStats() (map[string]*RunStats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*), MAX(score), MAX(level), AVG(score), SUM(duration_ms), MAX(created_at)
		 FROM runs
		 GROUP BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*RunStats)
	for rows.Next() {
		var st RunStats
		var totalMs int64
		var lastPlayed any
		if err := rows.Scan(&st.Difficulty, &st.RunsCount, &st.BestScore, &st.BestLevel, &st.AvgScore, &totalMs, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.TotalTime = time.Duration(totalMs) * time.Millisecond
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Difficulty] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime converts a DATETIME column, which the driver may return as
// either time.Time or string.
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
