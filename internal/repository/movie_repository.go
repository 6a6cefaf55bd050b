package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"watch-tracker-service/internal/apperr"
	"watch-tracker-service/internal/models"
)

// MovieRepository handles database operations for movies.
type MovieRepository struct {
	db *sql.DB
}

// NewMovieRepository creates a new MovieRepository.
func NewMovieRepository(db *sql.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

const movieColumns = `id, title, genre, release_year, created_at, updated_at`

func scanMovie(row interface{ Scan(...any) error }) (*models.Movie, error) {
	var m models.Movie
	err := row.Scan(&m.ID, &m.Title, &m.Genre, &m.ReleaseYear, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns all movies ordered by title.
func (r *MovieRepository) List() ([]models.Movie, error) {
	rows, err := r.db.Query(`SELECT ` + movieColumns + ` FROM movies ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("list query failed: %w", err)
	}
	defer rows.Close()

	movies := make([]models.Movie, 0)
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movie row: %w", err)
		}
		movies = append(movies, *m)
	}
	return movies, rows.Err()
}

// Create inserts a new movie.
func (r *MovieRepository) Create(req models.CreateMovieRequest) (*models.Movie, error) {
	m, err := scanMovie(r.db.QueryRow(`
		INSERT INTO movies (title, genre, release_year)
		VALUES ($1, $2, $3)
		RETURNING `+movieColumns+`
	`, req.Title, req.Genre, req.ReleaseYear))
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	return m, nil
}

// Get returns a movie by ID.
func (r *MovieRepository) Get(id int) (*models.Movie, error) {
	m, err := scanMovie(r.db.QueryRow(`SELECT `+movieColumns+` FROM movies WHERE id = $1`, id))
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	return m, nil
}

// Update applies the non-nil fields of the request and returns the updated
// movie. The SET clause is built from the allow-listed fields only.
func (r *MovieRepository) Update(id int, req models.UpdateMovieRequest) (*models.Movie, error) {
	sets := []string{"updated_at = NOW()"}
	args := []any{}
	argIdx := 1

	if req.Title != nil {
		sets = append(sets, fmt.Sprintf("title = $%d", argIdx))
		args = append(args, *req.Title)
		argIdx++
	}
	if req.Genre != nil {
		sets = append(sets, fmt.Sprintf("genre = $%d", argIdx))
		args = append(args, *req.Genre)
		argIdx++
	}
	if req.ReleaseYear != nil {
		sets = append(sets, fmt.Sprintf("release_year = $%d", argIdx))
		args = append(args, *req.ReleaseYear)
		argIdx++
	}

	query := fmt.Sprintf(`UPDATE movies SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), argIdx, movieColumns)
	args = append(args, id)

	m, err := scanMovie(r.db.QueryRow(query, args...))
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	return m, nil
}

// Delete removes a movie. Dependent watch entries cascade; if the schema
// blocks the delete with a live reference instead, that surfaces as conflict.
func (r *MovieRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM movies WHERE id = $1`, id)
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
