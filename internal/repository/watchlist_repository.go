package repository

import (
	"database/sql"
	"fmt"

	"watch-tracker-service/internal/apperr"
	"watch-tracker-service/internal/models"
)

// WatchlistRepository handles database operations for watch entries.
type WatchlistRepository struct {
	db *sql.DB
}

// NewWatchlistRepository creates a new WatchlistRepository.
func NewWatchlistRepository(db *sql.DB) *WatchlistRepository {
	return &WatchlistRepository{db: db}
}

const entryColumns = `id, user_id, content_type, content_id, status,
	current_season, current_episode, watched_episodes, total_episodes,
	created_at, updated_at`

func scanEntry(row interface{ Scan(...any) error }) (*models.WatchEntry, error) {
	var e models.WatchEntry
	err := row.Scan(&e.ID, &e.UserID, &e.ContentType, &e.ContentID, &e.Status,
		&e.CurrentSeason, &e.CurrentEpisode, &e.WatchedEpisodes, &e.TotalEpisodes,
		&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ListByUser returns a user's watch entries, most recently touched first.
func (r *WatchlistRepository) ListByUser(userID int) ([]models.WatchEntry, error) {
	rows, err := r.db.Query(`
		SELECT `+entryColumns+`
		FROM watch_entries
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list query failed: %w", err)
	}
	defer rows.Close()

	entries := make([]models.WatchEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan watch entry row: %w", err)
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// Create inserts a watch entry. The tagged (content_type, content_id) pair
// is fanned out to the matching FK column so catalog deletes cascade. A
// second entry for the same (user, content) loses to the unique constraint
// and surfaces as conflict.
func (r *WatchlistRepository) Create(e *models.WatchEntry) (*models.WatchEntry, error) {
	var movieID, seriesID sql.NullInt64
	switch e.ContentType {
	case models.ContentTypeMovie:
		movieID = sql.NullInt64{Int64: int64(e.ContentID), Valid: true}
	case models.ContentTypeSeries:
		seriesID = sql.NullInt64{Int64: int64(e.ContentID), Valid: true}
	}

	created, err := scanEntry(r.db.QueryRow(`
		INSERT INTO watch_entries (user_id, content_type, content_id, movie_id, series_id,
			status, current_season, current_episode, watched_episodes, total_episodes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+entryColumns+`
	`, e.UserID, e.ContentType, e.ContentID, movieID, seriesID,
		e.Status, e.CurrentSeason, e.CurrentEpisode, e.WatchedEpisodes, e.TotalEpisodes))
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	return created, nil
}

// UpdateSeriesProgress loads a user's entry for a series, lets apply mutate
// it, and persists the result. Load and write happen in one transaction with
// the row locked.
func (r *WatchlistRepository) UpdateSeriesProgress(userID, seriesID int, apply func(*models.WatchEntry)) (*models.WatchEntry, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	entry, err := scanEntry(tx.QueryRow(`
		SELECT `+entryColumns+`
		FROM watch_entries
		WHERE user_id = $1 AND content_type = $2 AND content_id = $3
		FOR UPDATE
	`, userID, models.ContentTypeSeries, seriesID))
	if err != nil {
		return nil, apperr.FromDB(err)
	}

	apply(entry)

	updated, err := scanEntry(tx.QueryRow(`
		UPDATE watch_entries
		SET status = $1, current_season = $2, current_episode = $3,
			watched_episodes = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING `+entryColumns+`
	`, entry.Status, entry.CurrentSeason, entry.CurrentEpisode, entry.WatchedEpisodes, entry.ID))
	if err != nil {
		return nil, apperr.FromDB(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return updated, nil
}
