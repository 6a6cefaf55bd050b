package service

import (
	"errors"
	"fmt"

	"watch-tracker-service/internal/apperr"
	"watch-tracker-service/internal/models"
)

// SeriesStore is the persistence surface the series service depends on,
// implemented by repository.SeriesRepository.
type SeriesStore interface {
	List() ([]models.Series, error)
	Create(req models.CreateSeriesRequest) (*models.Series, error)
	Get(id int) (*models.SeriesDetail, error)
	Update(id int, req models.UpdateSeriesRequest) (*models.SeriesDetail, error)
	Delete(id int) error
	AddSeason(seriesID int, req models.AddSeasonRequest) (*models.Season, error)
}

// SeriesService handles business logic for series and their seasons.
type SeriesService struct {
	store SeriesStore
}

// NewSeriesService creates a new SeriesService.
func NewSeriesService(store SeriesStore) *SeriesService {
	return &SeriesService{store: store}
}

// List returns all series ordered by title. Seasons are not embedded in
// listings; use Get for the full shape.
func (s *SeriesService) List() ([]models.Series, error) {
	return s.store.List()
}

// Create validates and persists a new series.
func (s *SeriesService) Create(req models.CreateSeriesRequest) (*models.Series, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.store.Create(req)
}

// Get returns a series with its seasons.
func (s *SeriesService) Get(id int) (*models.SeriesDetail, error) {
	detail, err := s.store.Get(id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("series with id %d %w", id, apperr.ErrNotFound)
		}
		return nil, err
	}
	return detail, nil
}

// Update applies the allow-listed fields of a partial update.
func (s *SeriesService) Update(id int, req models.UpdateSeriesRequest) (*models.SeriesDetail, error) {
	detail, err := s.store.Update(id, req)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("series with id %d %w", id, apperr.ErrNotFound)
		}
		return nil, err
	}
	return detail, nil
}

// Delete removes a series and, by cascade, its seasons and watch entries.
func (s *SeriesService) Delete(id int) error {
	err := s.store.Delete(id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return fmt.Errorf("series with id %d %w", id, apperr.ErrNotFound)
		}
		if errors.Is(err, apperr.ErrConflict) {
			return fmt.Errorf("%w: series is still referenced by a watchlist", apperr.ErrConflict)
		}
		return err
	}
	return nil
}

// AddSeason validates and adds a season to an existing series.
func (s *SeriesService) AddSeason(seriesID int, req models.AddSeasonRequest) (*models.Season, error) {
	if _, err := s.Get(seriesID); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	season, err := s.store.AddSeason(seriesID, req)
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return nil, fmt.Errorf("%w: season %d already exists for this series", apperr.ErrConflict, *req.Number)
		}
		return nil, err
	}
	return season, nil
}
