// Package repo is used for performing database repository operations.
package repo

import (
	"database/sql"
	"fmt"
	"time"

	"mpvremote/internal/domain/consts"
	"mpvremote/internal/models"

	"github.com/Masterminds/squirrel"
)

// HistoryStore records playback starts and serves recent-play queries.
type HistoryStore struct {
	DB *sql.DB
}

// GetHistoryStore returns a store bound to db.
func GetHistoryStore(db *sql.DB) *HistoryStore {
	return &HistoryStore{
		DB: db,
	}
}

// RecordPlay inserts one playback start for target.
func (hs *HistoryStore) RecordPlay(target string) (int64, error) {
	if target == "" {
		return 0, fmt.Errorf("must enter a playback target")
	}

	query := squirrel.
		Insert(consts.DBHistory).
		Columns(
			consts.QHistTarget,
			consts.QHistStartedAt,
		).
		Values(
			target,
			time.Now(),
		).
		RunWith(hs.DB)

	result, err := query.Exec()
	if err != nil {
		return 0, fmt.Errorf("failed to insert history entry: %w", err)
	}

	return result.LastInsertId()
}

// RecentPlays returns playback starts no older than since (zero means no
// cutoff), most recent first, capped at limit.
func (hs *HistoryStore) RecentPlays(since time.Time, limit int) ([]models.HistoryEntry, error) {
	if limit <= 0 {
		limit = 25
	}

	query := squirrel.
		Select(
			consts.QHistID,
			consts.QHistTarget,
			consts.QHistStartedAt,
		).
		From(consts.DBHistory).
		OrderBy(fmt.Sprintf("%s DESC", consts.QHistStartedAt), fmt.Sprintf("%s DESC", consts.QHistID)).
		Limit(uint64(limit))

	if !since.IsZero() {
		query = query.Where(squirrel.GtOrEq{consts.QHistStartedAt: since})
	}

	sqlPlaceholder, args, err := query.PlaceholderFormat(squirrel.Question).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := hs.DB.Query(sqlPlaceholder, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []models.HistoryEntry
	for rows.Next() {
		var e models.HistoryEntry
		if err := rows.Scan(&e.ID, &e.Target, &e.StartedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return entries, nil
}
