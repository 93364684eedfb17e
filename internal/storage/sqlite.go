package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// KindSQLite names the SQLite backend.
const KindSQLite = "sqlite"

// DBFile is the database file name inside the scores directory.
const DBFile = "scores.db"

func init() {
	Register(KindSQLite, func(dir string) (Store, error) {
		return OpenSQLite(filepath.Join(dir, DBFile))
	})
}

// SQLiteStore keeps every level in one scores table.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite creates or opens a database at dbPath, creating parent
// directories and running migrations.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	dbPath, err := ExpandHome(dbPath)
	if err != nil {
		return nil, err
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

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the schema if it doesn't exist.
func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level INTEGER NOT NULL,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(level, name)
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(level, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save upserts rec. An existing row only changes when the new score is
// higher.
func (s *SQLiteStore) Save(level int, rec Record) error {
	_, err := s.db.Exec(
		`INSERT INTO scores (level, name, score) VALUES (?, ?, ?)
		 ON CONFLICT(level, name) DO UPDATE SET
		   score = max(scores.score, excluded.score),
		   updated_at = CASE WHEN excluded.score > scores.score
		                THEN CURRENT_TIMESTAMP ELSE scores.updated_at END`,
		level, rec.Name, rec.Score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	return nil
}

// Load returns every record for the level, highest first. Ties are ordered
// by first insertion.
func (s *SQLiteStore) Load(level int) ([]Record, error) {
	return s.query(level, -1)
}

// Top returns at most n records for the level.
func (s *SQLiteStore) Top(level, n int) ([]Record, error) {
	if n <= 0 {
		n = -1
	}
	return s.query(level, n)
}

func (s *SQLiteStore) query(level, limit int) ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT name, score
		 FROM scores
		 WHERE level = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.Name, &r.Score); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// ClearLevel deletes all scores for a level.
func (s *SQLiteStore) ClearLevel(level int) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE level = ?", level)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

var _ Store = (*SQLiteStore)(nil)
