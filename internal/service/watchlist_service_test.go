package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"watch-tracker-service/internal/apperr"
	"watch-tracker-service/internal/models"
)

func newWatchlistFixture() (*WatchlistService, *mockMovieStore, *mockSeriesStore, *mockWatchlistStore) {
	movies := new(mockMovieStore)
	series := new(mockSeriesStore)
	entries := new(mockWatchlistStore)
	return NewWatchlistService(movies, series, entries), movies, series, entries
}

func detailWithSeasons(id int, counts ...int) *models.SeriesDetail {
	detail := &models.SeriesDetail{
		Series:  models.Series{ID: id, Title: "Dark", TotalSeasons: len(counts)},
		Seasons: make([]models.Season, 0, len(counts)),
	}
	for i, c := range counts {
		detail.Seasons = append(detail.Seasons, models.Season{
			ID: i + 1, SeriesID: id, Number: i + 1, EpisodesCount: c,
		})
	}
	return detail
}

func TestAddMovieCreatesPendingEntry(t *testing.T) {
	svc, movies, _, entries := newWatchlistFixture()
	movies.On("Get", 5).Return(&models.Movie{ID: 5, Title: "Heat"}, nil)
	entries.On("Create", mock.MatchedBy(func(e *models.WatchEntry) bool {
		return e.UserID == 7 && e.ContentType == models.ContentTypeMovie &&
			e.ContentID == 5 && e.Status == models.StatusPending &&
			e.TotalEpisodes == 1 && e.WatchedEpisodes == 0
	})).Return(&models.WatchEntry{ID: 1, UserID: 7, ContentType: models.ContentTypeMovie, ContentID: 5,
		Status: models.StatusPending, TotalEpisodes: 1}, nil)

	entry, err := svc.AddMovie(7, 5)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, entry.Status)
	assert.Equal(t, 1, entry.TotalEpisodes)
	entries.AssertExpectations(t)
}

func TestAddMovieNotFound(t *testing.T) {
	svc, movies, _, entries := newWatchlistFixture()
	movies.On("Get", 99).Return(nil, apperr.ErrNotFound)

	_, err := svc.AddMovie(7, 99)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	entries.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAddMovieDuplicateIsConflict(t *testing.T) {
	svc, movies, _, entries := newWatchlistFixture()
	movies.On("Get", 5).Return(&models.Movie{ID: 5, Title: "Heat"}, nil)
	entries.On("Create", mock.Anything).Return(nil, apperr.ErrConflict)

	_, err := svc.AddMovie(7, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.Contains(t, err.Error(), "already in the watchlist")
}

func TestAddSeriesSnapshotsEpisodeTotal(t *testing.T) {
	svc, _, series, entries := newWatchlistFixture()
	series.On("Get", 3).Return(detailWithSeasons(3, 10, 8), nil)
	entries.On("Create", mock.MatchedBy(func(e *models.WatchEntry) bool {
		return e.ContentType == models.ContentTypeSeries && e.ContentID == 3 &&
			e.Status == models.StatusPending && e.TotalEpisodes == 18 &&
			e.WatchedEpisodes == 0 &&
			e.CurrentSeason != nil && *e.CurrentSeason == 1 &&
			e.CurrentEpisode != nil && *e.CurrentEpisode == 1
	})).Return(&models.WatchEntry{ID: 2, UserID: 7, ContentType: models.ContentTypeSeries,
		ContentID: 3, Status: models.StatusPending, TotalEpisodes: 18}, nil)

	entry, err := svc.AddSeries(7, 3)
	require.NoError(t, err)
	assert.Equal(t, 18, entry.TotalEpisodes)
	entries.AssertExpectations(t)
}

func TestAddSeriesWithoutSeasons(t *testing.T) {
	svc, _, series, entries := newWatchlistFixture()
	series.On("Get", 3).Return(detailWithSeasons(3), nil)
	entries.On("Create", mock.MatchedBy(func(e *models.WatchEntry) bool {
		return e.TotalEpisodes == 0
	})).Return(&models.WatchEntry{ID: 2, TotalEpisodes: 0}, nil)

	entry, err := svc.AddSeries(7, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, entry.TotalEpisodes)
}

func TestAddSeriesNotFound(t *testing.T) {
	svc, _, series, _ := newWatchlistFixture()
	series.On("Get", 42).Return(nil, apperr.ErrNotFound)

	_, err := svc.AddSeries(7, 42)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateSeriesProgressEmptyPayload(t *testing.T) {
	svc, _, series, entries := newWatchlistFixture()

	_, err := svc.UpdateSeriesProgress(7, 3, models.ProgressUpdateRequest{})
	assert.ErrorIs(t, err, apperr.ErrValidation)
	series.AssertNotCalled(t, "Get", mock.Anything)
	entries.AssertNotCalled(t, "UpdateSeriesProgress", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateSeriesProgressReconciles(t *testing.T) {
	svc, _, series, entries := newWatchlistFixture()
	series.On("Get", 3).Return(detailWithSeasons(3, 10, 8), nil)

	stored := &models.WatchEntry{
		ID: 2, UserID: 7, ContentType: models.ContentTypeSeries, ContentID: 3,
		Status: models.StatusPending, TotalEpisodes: 18,
	}
	entries.On("UpdateSeriesProgress", 7, 3, mock.Anything).
		Run(func(args mock.Arguments) {
			apply := args.Get(2).(func(*models.WatchEntry))
			apply(stored)
		}).
		Return(stored, nil)

	watched := 18
	entry, err := svc.UpdateSeriesProgress(7, 3, models.ProgressUpdateRequest{WatchedEpisodes: &watched})
	require.NoError(t, err)

	// Full completion marks the entry watched with the cursor on the last
	// episode of the last season.
	assert.Equal(t, models.StatusWatched, entry.Status)
	assert.Equal(t, 18, entry.WatchedEpisodes)
	require.NotNil(t, entry.CurrentSeason)
	require.NotNil(t, entry.CurrentEpisode)
	assert.Equal(t, 2, *entry.CurrentSeason)
	assert.Equal(t, 8, *entry.CurrentEpisode)
}

func TestUpdateSeriesProgressEntryMissing(t *testing.T) {
	svc, _, series, entries := newWatchlistFixture()
	series.On("Get", 3).Return(detailWithSeasons(3, 10, 8), nil)
	entries.On("UpdateSeriesProgress", 7, 3, mock.Anything).Return(nil, apperr.ErrNotFound)

	watched := 2
	_, err := svc.UpdateSeriesProgress(7, 3, models.ProgressUpdateRequest{WatchedEpisodes: &watched})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Contains(t, err.Error(), "watchlist entry")
}

func TestListWatchlistPassesThrough(t *testing.T) {
	svc, _, _, entries := newWatchlistFixture()
	expected := []models.WatchEntry{{ID: 2}, {ID: 1}}
	entries.On("ListByUser", 7).Return(expected, nil)

	got, err := svc.ListWatchlist(7)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}
