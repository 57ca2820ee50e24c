// Package storage provides SQLite-based persistence for the score history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultPath is where the history lives unless --db says otherwise.
const DefaultPath = "~/.neontype/history.db"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreRecord is one finished run. History is append-only.
type ScoreRecord struct {
	ID         int64
	RunID      string
	Pack       string
	Difficulty string
	Score      int
	At         time.Time
}

// Stats summarizes the history, optionally for one pack.
type Stats struct {
	Runs    int
	Best    int
	Average float64
	Total   int64
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			pack TEXT NOT NULL DEFAULT '',
			difficulty TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_scores_created ON scores(created_at);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(pack, score DESC);
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

// AppendScore records a finished run.
// A zero At is stamped with the current time.
// Returns the ID of the inserted record.
func (s *Store) AppendScore(rec ScoreRecord) (int64, error) {
	if rec.At.IsZero() {
		rec.At = time.Now()
	}

	result, err := s.db.Exec(
		"INSERT INTO scores (run_id, pack, difficulty, score, created_at) VALUES (?, ?, ?, ?, ?)",
		rec.RunID, rec.Pack, rec.Difficulty, rec.Score, rec.At.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// History returns the most recent runs, oldest first.
// A non-positive limit returns everything.
func (s *Store) History(limit int) ([]ScoreRecord, error) {
	query := `SELECT id, run_id, pack, difficulty, score, created_at FROM (
			SELECT * FROM scores ORDER BY created_at DESC, id DESC LIMIT ?
		) ORDER BY created_at ASC, id ASC`
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query history: %w", err)
	}
	return scanRecords(rows)
}

// TopScores returns the best runs, highest first. An empty pack means all packs.
func (s *Store) TopScores(pack string, limit int) ([]ScoreRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, pack, difficulty, score, created_at
		 FROM scores
		 WHERE ? = '' OR pack = ?
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		pack, pack, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanRecords(rows)
}

// scanRecords reads every row and closes the result set.
func scanRecords(rows *sql.Rows) ([]ScoreRecord, error) {
	defer rows.Close()

	var records []ScoreRecord
	for rows.Next() {
		var r ScoreRecord
		var createdAt int64
		if err := rows.Scan(&r.ID, &r.RunID, &r.Pack, &r.Difficulty, &r.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.At = time.UnixMilli(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// HighScore returns the highest score, optionally for one pack.
// Returns 0 if no scores exist.
func (s *Store) HighScore(pack string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE ? = '' OR pack = ?",
		pack, pack,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats summarizes the history, optionally for one pack.
func (s *Store) Stats(pack string) (Stats, error) {
	var st Stats
	var best, total sql.NullInt64
	var avg sql.NullFloat64

	err := s.db.QueryRow(
		"SELECT COUNT(*), MAX(score), AVG(score), SUM(score) FROM scores WHERE ? = '' OR pack = ?",
		pack, pack,
	).Scan(&st.Runs, &best, &avg, &total)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	st.Best = int(best.Int64)
	st.Average = avg.Float64
	st.Total = total.Int64
	return st, nil
}

// Clear removes the whole history.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM scores"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}
