// Package database opens the playback history database and prepares its
// tables.
package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the open handle.
type Database struct {
	DB *sql.DB
}

// InitDB opens (creating if needed) the SQLite database at path and
// initializes its tables.
func InitDB(path string) (*Database, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to make database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at path %q: %w", path, err)
	}

	if err := initTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize tables: %w", err)
	}

	return &Database{DB: db}, nil
}

// Close closes the underlying handle.
func (d *Database) Close() error {
	return d.DB.Close()
}
