package models

import (
	"fmt"
	"strings"
	"time"

	"watch-tracker-service/internal/apperr"
)

// Movie represents a movie in the catalog.
type Movie struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Genre       *string   `json:"genre"`
	ReleaseYear *int      `json:"release_year"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateMovieRequest is the payload for creating a movie.
type CreateMovieRequest struct {
	Title       string  `json:"title"`
	Genre       *string `json:"genre"`
	ReleaseYear *int    `json:"release_year"`
}

// Validate checks required fields.
func (r CreateMovieRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("%w: the 'title' field is required", apperr.ErrValidation)
	}
	return nil
}

// UpdateMovieRequest is the partial-update payload for a movie. The fields
// listed here are the mutable ones; unknown JSON keys are dropped on decode
// and absent fields (nil) are left untouched.
type UpdateMovieRequest struct {
	Title       *string `json:"title"`
	Genre       *string `json:"genre"`
	ReleaseYear *int    `json:"release_year"`
}
