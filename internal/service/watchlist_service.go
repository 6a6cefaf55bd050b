package service

import (
	"errors"
	"fmt"

	"watch-tracker-service/internal/apperr"
	"watch-tracker-service/internal/models"
)

// WatchlistStore is the persistence surface the watchlist service depends
// on, implemented by repository.WatchlistRepository.
type WatchlistStore interface {
	ListByUser(userID int) ([]models.WatchEntry, error)
	Create(e *models.WatchEntry) (*models.WatchEntry, error)
	UpdateSeriesProgress(userID, seriesID int, apply func(*models.WatchEntry)) (*models.WatchEntry, error)
}

// WatchlistService handles a user's watchlist and watch progress.
type WatchlistService struct {
	movies  MovieStore
	series  SeriesStore
	entries WatchlistStore
}

// NewWatchlistService creates a new WatchlistService.
func NewWatchlistService(movies MovieStore, series SeriesStore, entries WatchlistStore) *WatchlistService {
	return &WatchlistService{movies: movies, series: series, entries: entries}
}

// ListWatchlist returns the user's entries, most recently touched first.
func (s *WatchlistService) ListWatchlist(userID int) ([]models.WatchEntry, error) {
	return s.entries.ListByUser(userID)
}

// AddMovie puts a movie on the user's watchlist as pending. A movie is a
// single episode, so the total is fixed at 1.
func (s *WatchlistService) AddMovie(userID, movieID int) (*models.WatchEntry, error) {
	if _, err := s.movies.Get(movieID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("movie with id %d %w", movieID, apperr.ErrNotFound)
		}
		return nil, err
	}

	entry, err := s.entries.Create(&models.WatchEntry{
		UserID:        userID,
		ContentType:   models.ContentTypeMovie,
		ContentID:     movieID,
		Status:        models.StatusPending,
		TotalEpisodes: 1,
	})
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return nil, fmt.Errorf("%w: movie is already in the watchlist", apperr.ErrConflict)
		}
		return nil, err
	}
	return entry, nil
}

// AddSeries puts a series on the user's watchlist as pending. The episode
// total is a snapshot of the seasons existing right now; seasons added later
// do not change it.
func (s *WatchlistService) AddSeries(userID, seriesID int) (*models.WatchEntry, error) {
	detail, err := s.series.Get(seriesID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("series with id %d %w", seriesID, apperr.ErrNotFound)
		}
		return nil, err
	}

	currentSeason, currentEpisode := 1, 1
	entry, err := s.entries.Create(&models.WatchEntry{
		UserID:         userID,
		ContentType:    models.ContentTypeSeries,
		ContentID:      seriesID,
		Status:         models.StatusPending,
		CurrentSeason:  &currentSeason,
		CurrentEpisode: &currentEpisode,
		TotalEpisodes:  models.TotalEpisodes(detail.Seasons),
	})
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return nil, fmt.Errorf("%w: series is already in the watchlist", apperr.ErrConflict)
		}
		return nil, err
	}
	return entry, nil
}

// UpdateSeriesProgress reconciles the user's entry for a series with a
// partial progress payload and persists the result.
func (s *WatchlistService) UpdateSeriesProgress(userID, seriesID int, req models.ProgressUpdateRequest) (*models.WatchEntry, error) {
	if req.Empty() {
		return nil, fmt.Errorf("%w: empty progress payload", apperr.ErrValidation)
	}

	// Season data feeds the mark-as-watched cursor. If the series is gone
	// its entries were cascade-deleted with it, so the lookup below would
	// miss anyway; surface that as the entry being absent.
	detail, err := s.series.Get(seriesID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("watchlist entry for series %d %w", seriesID, apperr.ErrNotFound)
		}
		return nil, err
	}

	entry, err := s.entries.UpdateSeriesProgress(userID, seriesID, func(e *models.WatchEntry) {
		e.ApplyProgress(req, detail.Seasons)
	})
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("watchlist entry for series %d %w", seriesID, apperr.ErrNotFound)
		}
		return nil, err
	}
	return entry, nil
}
