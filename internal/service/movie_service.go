package service

import (
	"errors"
	"fmt"

	"watch-tracker-service/internal/apperr"
	"watch-tracker-service/internal/models"
)

// MovieStore is the persistence surface the movie service depends on,
// implemented by repository.MovieRepository.
type MovieStore interface {
	List() ([]models.Movie, error)
	Create(req models.CreateMovieRequest) (*models.Movie, error)
	Get(id int) (*models.Movie, error)
	Update(id int, req models.UpdateMovieRequest) (*models.Movie, error)
	Delete(id int) error
}

// MovieService handles business logic for the movie catalog.
type MovieService struct {
	store MovieStore
}

// NewMovieService creates a new MovieService.
func NewMovieService(store MovieStore) *MovieService {
	return &MovieService{store: store}
}

// List returns all movies ordered by title.
func (s *MovieService) List() ([]models.Movie, error) {
	return s.store.List()
}

// Create validates and persists a new movie.
func (s *MovieService) Create(req models.CreateMovieRequest) (*models.Movie, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.store.Create(req)
}

// Get returns a movie by ID.
func (s *MovieService) Get(id int) (*models.Movie, error) {
	m, err := s.store.Get(id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("movie with id %d %w", id, apperr.ErrNotFound)
		}
		return nil, err
	}
	return m, nil
}

// Update applies the allow-listed fields of a partial update.
func (s *MovieService) Update(id int, req models.UpdateMovieRequest) (*models.Movie, error) {
	m, err := s.store.Update(id, req)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("movie with id %d %w", id, apperr.ErrNotFound)
		}
		return nil, err
	}
	return m, nil
}

// Delete removes a movie and, by cascade, its watch entries.
func (s *MovieService) Delete(id int) error {
	err := s.store.Delete(id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return fmt.Errorf("movie with id %d %w", id, apperr.ErrNotFound)
		}
		if errors.Is(err, apperr.ErrConflict) {
			return fmt.Errorf("%w: movie is still referenced by a watchlist", apperr.ErrConflict)
		}
		return err
	}
	return nil
}
