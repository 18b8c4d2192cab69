package repository

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens (and creates) the database at path. ":memory:" is
// supported and pinned to a single connection so every query sees the same data.
func NewSQLiteDB(path string) (*SQLiteDB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("error creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error while pinging database: %w", err)
	}

	s := &SQLiteDB{
		db: db,
	}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("error while migrating to database: %w", err)
	}

	return s, nil
}

func (s *SQLiteDB) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS assessments (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			origin TEXT,
			destination TEXT,
			snow_factor REAL NOT NULL,
			fire_factor REAL NOT NULL,
			rain_factor REAL NOT NULL,
			overall_risk REAL NOT NULL,
			snow_risk REAL NOT NULL,
			rain_risk REAL NOT NULL,
			fire_risk REAL NOT NULL,
			traffic_risk REAL NOT NULL,
			risk_level TEXT NOT NULL,
			recommended_route INTEGER NOT NULL,
			route_count INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_assessments_created_at ON assessments(created_at);
		CREATE INDEX IF NOT EXISTS idx_assessments_session_id ON assessments(session_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteDB) Close() error {
	return s.db.Close()
}
