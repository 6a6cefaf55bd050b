package service

import (
	"github.com/stretchr/testify/mock"

	"watch-tracker-service/internal/models"
)

type mockMovieStore struct {
	mock.Mock
}

func (m *mockMovieStore) List() ([]models.Movie, error) {
	args := m.Called()
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *mockMovieStore) Create(req models.CreateMovieRequest) (*models.Movie, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *mockMovieStore) Get(id int) (*models.Movie, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *mockMovieStore) Update(id int, req models.UpdateMovieRequest) (*models.Movie, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *mockMovieStore) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

type mockSeriesStore struct {
	mock.Mock
}

func (m *mockSeriesStore) List() ([]models.Series, error) {
	args := m.Called()
	return args.Get(0).([]models.Series), args.Error(1)
}

func (m *mockSeriesStore) Create(req models.CreateSeriesRequest) (*models.Series, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Series), args.Error(1)
}

func (m *mockSeriesStore) Get(id int) (*models.SeriesDetail, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SeriesDetail), args.Error(1)
}

func (m *mockSeriesStore) Update(id int, req models.UpdateSeriesRequest) (*models.SeriesDetail, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SeriesDetail), args.Error(1)
}

func (m *mockSeriesStore) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *mockSeriesStore) AddSeason(seriesID int, req models.AddSeasonRequest) (*models.Season, error) {
	args := m.Called(seriesID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Season), args.Error(1)
}

type mockWatchlistStore struct {
	mock.Mock
}

func (m *mockWatchlistStore) ListByUser(userID int) ([]models.WatchEntry, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.WatchEntry), args.Error(1)
}

func (m *mockWatchlistStore) Create(e *models.WatchEntry) (*models.WatchEntry, error) {
	args := m.Called(e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WatchEntry), args.Error(1)
}

func (m *mockWatchlistStore) UpdateSeriesProgress(userID, seriesID int, apply func(*models.WatchEntry)) (*models.WatchEntry, error) {
	args := m.Called(userID, seriesID, apply)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WatchEntry), args.Error(1)
}
