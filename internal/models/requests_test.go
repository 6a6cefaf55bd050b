package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"watch-tracker-service/internal/apperr"
)

func TestCreateMovieRequestValidate(t *testing.T) {
	assert.NoError(t, CreateMovieRequest{Title: "Heat"}.Validate())

	err := CreateMovieRequest{Title: "  "}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.Contains(t, err.Error(), "title")
}

func TestCreateSeriesRequestValidate(t *testing.T) {
	seasons := 3
	assert.NoError(t, CreateSeriesRequest{Title: "Dark", TotalSeasons: &seasons}.Validate())

	assert.ErrorIs(t, CreateSeriesRequest{Title: "Dark"}.Validate(), apperr.ErrValidation)
	assert.ErrorIs(t, CreateSeriesRequest{TotalSeasons: &seasons}.Validate(), apperr.ErrValidation)
}

func TestAddSeasonRequestValidate(t *testing.T) {
	number, episodes := 1, 10
	assert.NoError(t, AddSeasonRequest{Number: &number, EpisodesCount: &episodes}.Validate())

	assert.ErrorIs(t, AddSeasonRequest{Number: &number}.Validate(), apperr.ErrValidation)
	assert.ErrorIs(t, AddSeasonRequest{EpisodesCount: &episodes}.Validate(), apperr.ErrValidation)
	assert.ErrorIs(t, AddSeasonRequest{}.Validate(), apperr.ErrValidation)
}

func TestUpdateRequestsIgnoreUnknownKeys(t *testing.T) {
	// The allow-list is the struct: unknown keys vanish on decode and
	// absent fields stay nil.
	var req UpdateMovieRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Heat 2","director":"x","id":99}`), &req))
	require.NotNil(t, req.Title)
	assert.Equal(t, "Heat 2", *req.Title)
	assert.Nil(t, req.Genre)
	assert.Nil(t, req.ReleaseYear)
}

func TestTotalEpisodes(t *testing.T) {
	assert.Equal(t, 0, TotalEpisodes(nil))
	assert.Equal(t, 18, TotalEpisodes([]Season{
		{Number: 1, EpisodesCount: 10},
		{Number: 2, EpisodesCount: 8},
	}))
}
