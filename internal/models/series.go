package models

import (
	"fmt"
	"strings"
	"time"

	"watch-tracker-service/internal/apperr"
)

// Series represents a series in the catalog, without its seasons. Listings
// use this shape; season data is only loaded for single-series reads.
type Series struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	TotalSeasons int       `json:"total_seasons"`
	Synopsis     *string   `json:"synopsis"`
	Genres       *string   `json:"genres"`
	ImageURL     *string   `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SeriesDetail is a series with its seasons embedded.
type SeriesDetail struct {
	Series
	Seasons []Season `json:"seasons"`
}

// Season is one season of a series. (series_id, number) is unique.
type Season struct {
	ID            int `json:"id"`
	SeriesID      int `json:"series_id"`
	Number        int `json:"number"`
	EpisodesCount int `json:"episodes_count"`
}

// TotalEpisodes sums episode counts across the given seasons.
func TotalEpisodes(seasons []Season) int {
	total := 0
	for _, s := range seasons {
		total += s.EpisodesCount
	}
	return total
}

// CreateSeriesRequest is the payload for creating a series.
type CreateSeriesRequest struct {
	Title        string  `json:"title"`
	TotalSeasons *int    `json:"total_seasons"`
	Synopsis     *string `json:"synopsis"`
	Genres       *string `json:"genres"`
	ImageURL     *string `json:"image_url"`
}

// Validate checks required fields.
func (r CreateSeriesRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" || r.TotalSeasons == nil {
		return fmt.Errorf("%w: the 'title' and 'total_seasons' fields are required", apperr.ErrValidation)
	}
	return nil
}

// UpdateSeriesRequest is the partial-update payload for a series.
type UpdateSeriesRequest struct {
	Title        *string `json:"title"`
	TotalSeasons *int    `json:"total_seasons"`
	Synopsis     *string `json:"synopsis"`
	Genres       *string `json:"genres"`
	ImageURL     *string `json:"image_url"`
}

// AddSeasonRequest is the payload for adding a season to a series.
type AddSeasonRequest struct {
	Number        *int `json:"number"`
	EpisodesCount *int `json:"episodes_count"`
}

// Validate checks required fields.
func (r AddSeasonRequest) Validate() error {
	if r.Number == nil || r.EpisodesCount == nil {
		return fmt.Errorf("%w: the 'number' and 'episodes_count' fields are required", apperr.ErrValidation)
	}
	return nil
}
