// Package storage provides SQLite-based persistence for level completion
// records. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
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

// CompletionEntry is one recorded level completion.
type CompletionEntry struct {
	ID        int64
	Level     int // 0-based catalog index
	LevelName string
	Moves     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path. It creates
// the parent directories if needed and runs migrations.
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
		CREATE TABLE IF NOT EXISTS completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level INTEGER NOT NULL,
			level_name TEXT NOT NULL,
			moves INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_completions_level ON completions(level);
		CREATE INDEX IF NOT EXISTS idx_completions_best ON completions(level, moves ASC);
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

// SaveCompletion records a finished level and how many jumps it took.
// Returns the ID of the inserted record.
func (s *Store) SaveCompletion(level int, levelName string, moves int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO completions (level, level_name, moves) VALUES (?, ?, ?)",
		level, levelName, moves,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save completion: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Completions retrieves the most recent completions across all levels,
// newest first.
func (s *Store) Completions(limit int) ([]CompletionEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, level, level_name, moves, created_at
		 FROM completions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completions: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// LevelCompletions retrieves completions for a single level, fewest moves
// first.
func (s *Store) LevelCompletions(level, limit int) ([]CompletionEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level, level_name, moves, created_at
		 FROM completions
		 WHERE level = ?
		 ORDER BY moves ASC, created_at ASC
		 LIMIT ?`,
		level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completions: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// BestMoves returns the fewest jumps ever needed to finish the given
// level, or 0 if it has never been completed.
func (s *Store) BestMoves(level int) (int, error) {
	var moves sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(moves) FROM completions WHERE level = ?",
		level,
	).Scan(&moves)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best moves: %w", err)
	}

	if !moves.Valid {
		return 0, nil
	}
	return int(moves.Int64), nil
}

// CompletedLevels returns the distinct level indices that have at least
// one completion, in ascending order.
func (s *Store) CompletedLevels() ([]int, error) {
	rows, err := s.db.Query("SELECT DISTINCT level FROM completions ORDER BY level ASC")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completed levels: %w", err)
	}
	defer rows.Close()

	var levels []int
	for rows.Next() {
		var lvl int
		if err := rows.Scan(&lvl); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		levels = append(levels, lvl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return levels, nil
}

// ClearCompletions deletes every completion record.
func (s *Store) ClearCompletions() error {
	if _, err := s.db.Exec("DELETE FROM completions"); err != nil {
		return fmt.Errorf("storage: cannot clear completions: %w", err)
	}
	return nil
}

func scanEntries(rows *sql.Rows) ([]CompletionEntry, error) {
	var entries []CompletionEntry
	for rows.Next() {
		var e CompletionEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Level, &e.LevelName, &e.Moves, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}
