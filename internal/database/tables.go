package database

import (
	"database/sql"
	"fmt"
)

// initTables initializes the SQL tables.
func initTables(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := initHistoryTable(tx); err != nil {
		return err
	}

	return tx.Commit()
}

// initHistoryTable creates the playback history table.
func initHistoryTable(tx *sql.Tx) error {
	const query = `
	CREATE TABLE IF NOT EXISTS history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		target TEXT NOT NULL,
		started_at TIMESTAMP NOT NULL
	)`
	if _, err := tx.Exec(query); err != nil {
		return fmt.Errorf("failed to create history table: %w", err)
	}
	return nil
}
