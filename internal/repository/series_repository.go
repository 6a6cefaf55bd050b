package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"watch-tracker-service/internal/apperr"
	"watch-tracker-service/internal/models"
)

// SeriesRepository handles database operations for series and their seasons.
type SeriesRepository struct {
	db *sql.DB
}

// NewSeriesRepository creates a new SeriesRepository.
func NewSeriesRepository(db *sql.DB) *SeriesRepository {
	return &SeriesRepository{db: db}
}

const seriesColumns = `id, title, total_seasons, synopsis, genres, image_url, created_at, updated_at`

func scanSeries(row interface{ Scan(...any) error }) (*models.Series, error) {
	var s models.Series
	err := row.Scan(&s.ID, &s.Title, &s.TotalSeasons, &s.Synopsis, &s.Genres,
		&s.ImageURL, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List returns all series ordered by title, without seasons.
func (r *SeriesRepository) List() ([]models.Series, error) {
	rows, err := r.db.Query(`SELECT ` + seriesColumns + ` FROM series ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("list query failed: %w", err)
	}
	defer rows.Close()

	list := make([]models.Series, 0)
	for rows.Next() {
		s, err := scanSeries(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan series row: %w", err)
		}
		list = append(list, *s)
	}
	return list, rows.Err()
}

// Create inserts a new series.
func (r *SeriesRepository) Create(req models.CreateSeriesRequest) (*models.Series, error) {
	s, err := scanSeries(r.db.QueryRow(`
		INSERT INTO series (title, total_seasons, synopsis, genres, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+seriesColumns+`
	`, req.Title, req.TotalSeasons, req.Synopsis, req.Genres, req.ImageURL))
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	return s, nil
}

// Get returns a series with its seasons embedded.
func (r *SeriesRepository) Get(id int) (*models.SeriesDetail, error) {
	s, err := scanSeries(r.db.QueryRow(`SELECT `+seriesColumns+` FROM series WHERE id = $1`, id))
	if err != nil {
		return nil, apperr.FromDB(err)
	}

	seasons, err := r.seasonsBySeries(id)
	if err != nil {
		return nil, err
	}
	return &models.SeriesDetail{Series: *s, Seasons: seasons}, nil
}

func (r *SeriesRepository) seasonsBySeries(seriesID int) ([]models.Season, error) {
	rows, err := r.db.Query(`
		SELECT id, series_id, number, episodes_count
		FROM seasons
		WHERE series_id = $1
		ORDER BY number
	`, seriesID)
	if err != nil {
		return nil, fmt.Errorf("failed to query seasons: %w", err)
	}
	defer rows.Close()

	seasons := make([]models.Season, 0)
	for rows.Next() {
		var season models.Season
		if err := rows.Scan(&season.ID, &season.SeriesID, &season.Number, &season.EpisodesCount); err != nil {
			return nil, fmt.Errorf("failed to scan season row: %w", err)
		}
		seasons = append(seasons, season)
	}
	return seasons, rows.Err()
}

// Update applies the non-nil fields of the request and returns the updated
// series with seasons.
func (r *SeriesRepository) Update(id int, req models.UpdateSeriesRequest) (*models.SeriesDetail, error) {
	sets := []string{"updated_at = NOW()"}
	args := []any{}
	argIdx := 1

	if req.Title != nil {
		sets = append(sets, fmt.Sprintf("title = $%d", argIdx))
		args = append(args, *req.Title)
		argIdx++
	}
	if req.TotalSeasons != nil {
		sets = append(sets, fmt.Sprintf("total_seasons = $%d", argIdx))
		args = append(args, *req.TotalSeasons)
		argIdx++
	}
	if req.Synopsis != nil {
		sets = append(sets, fmt.Sprintf("synopsis = $%d", argIdx))
		args = append(args, *req.Synopsis)
		argIdx++
	}
	if req.Genres != nil {
		sets = append(sets, fmt.Sprintf("genres = $%d", argIdx))
		args = append(args, *req.Genres)
		argIdx++
	}
	if req.ImageURL != nil {
		sets = append(sets, fmt.Sprintf("image_url = $%d", argIdx))
		args = append(args, *req.ImageURL)
		argIdx++
	}

	query := fmt.Sprintf(`UPDATE series SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), argIdx, seriesColumns)
	args = append(args, id)

	s, err := scanSeries(r.db.QueryRow(query, args...))
	if err != nil {
		return nil, apperr.FromDB(err)
	}

	seasons, err := r.seasonsBySeries(id)
	if err != nil {
		return nil, err
	}
	return &models.SeriesDetail{Series: *s, Seasons: seasons}, nil
}

// Delete removes a series. Seasons and watch entries cascade.
func (r *SeriesRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM series WHERE id = $1`, id)
	if err != nil {
		return apperr.FromDB(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// AddSeason inserts a season for a series. A duplicate (series_id, number)
// pair is rejected by the unique constraint and surfaces as conflict.
func (r *SeriesRepository) AddSeason(seriesID int, req models.AddSeasonRequest) (*models.Season, error) {
	var season models.Season
	err := r.db.QueryRow(`
		INSERT INTO seasons (series_id, number, episodes_count)
		VALUES ($1, $2, $3)
		RETURNING id, series_id, number, episodes_count
	`, seriesID, req.Number, req.EpisodesCount).Scan(
		&season.ID, &season.SeriesID, &season.Number, &season.EpisodesCount,
	)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	return &season, nil
}
