package models

import (
	"encoding/json"
	"math"
	"time"
)

// Content types a watch entry can reference.
const (
	ContentTypeMovie  = "movie"
	ContentTypeSeries = "series"
)

// Watch statuses. Pending and watching are freely reversible through
// watched-episode changes; watched is reached explicitly or by completion.
const (
	StatusPending  = "pending"
	StatusWatching = "watching"
	StatusWatched  = "watched"
)

// WatchEntry tracks one user's progress on one piece of content. The
// (ContentType, ContentID) pair is a tagged reference: exactly one catalog
// entity backs it, selected by the tag. (user_id, content_type, content_id)
// is unique, so a user tracks a given item at most once.
//
// TotalEpisodes is a snapshot taken when the entry is created: 1 for movies,
// the sum of the series' season episode counts otherwise. It is not
// recomputed when seasons change later.
type WatchEntry struct {
	ID              int       `json:"id"`
	UserID          int       `json:"user_id"`
	ContentType     string    `json:"content_type"`
	ContentID       int       `json:"content_id"`
	Status          string    `json:"status"`
	CurrentSeason   *int      `json:"current_season"`
	CurrentEpisode  *int      `json:"current_episode"`
	WatchedEpisodes int       `json:"watched_episodes"`
	TotalEpisodes   int       `json:"total_episodes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// MarshalJSON adds the derived percentage_watched field to every serialized
// representation. The percentage is never stored.
func (e WatchEntry) MarshalJSON() ([]byte, error) {
	type entry WatchEntry
	return json.Marshal(struct {
		entry
		PercentageWatched float64 `json:"percentage_watched"`
	}{entry(e), e.PercentageWatched()})
}

// ProgressUpdateRequest is the partial payload accepted by the series
// progress endpoint. Absent fields (nil) leave the entry untouched.
type ProgressUpdateRequest struct {
	WatchedEpisodes *int    `json:"watched_episodes"`
	CurrentSeason   *int    `json:"current_season"`
	CurrentEpisode  *int    `json:"current_episode"`
	Status          *string `json:"status"`
}

// Empty reports whether the payload carries no updatable field.
func (r ProgressUpdateRequest) Empty() bool {
	return r.WatchedEpisodes == nil && r.CurrentSeason == nil &&
		r.CurrentEpisode == nil && r.Status == nil
}

// ApplyProgress reconciles the entry's status and episode counters with a
// partial update. Order matters:
//
//  1. watched_episodes is clamped to [0, TotalEpisodes], never rejected.
//  2. current_season / current_episode are stored verbatim.
//  3. status "watched" triggers the terminal transition and wins over the
//     automatic recomputation; any other supplied status is set verbatim.
//  4. Unless the entry ended up watched, status is recomputed from the
//     counters: full completion → watched, partial → watching, none → pending.
//
// Applying the same update twice yields the same state as applying it once.
func (e *WatchEntry) ApplyProgress(req ProgressUpdateRequest, seasons []Season) {
	if req.WatchedEpisodes != nil {
		watched := *req.WatchedEpisodes
		if watched < 0 {
			watched = 0
		}
		if watched > e.TotalEpisodes {
			watched = e.TotalEpisodes
		}
		e.WatchedEpisodes = watched
	}
	if req.CurrentSeason != nil {
		season := *req.CurrentSeason
		e.CurrentSeason = &season
	}
	if req.CurrentEpisode != nil {
		episode := *req.CurrentEpisode
		e.CurrentEpisode = &episode
	}
	if req.Status != nil {
		if *req.Status == StatusWatched {
			e.MarkWatched(seasons)
		} else {
			e.Status = *req.Status
		}
	}
	if e.Status != StatusWatched {
		switch {
		case e.WatchedEpisodes >= e.TotalEpisodes && e.TotalEpisodes > 0:
			e.MarkWatched(seasons)
		case e.WatchedEpisodes > 0:
			e.Status = StatusWatching
		default:
			e.Status = StatusPending
		}
	}
}

// MarkWatched performs the terminal transition. Movies get their single
// episode counted; series are forced to full completion with the cursor on
// the last episode of the highest-numbered season, when season data exists.
// Whatever the caller supplied for the cursor is overwritten here.
func (e *WatchEntry) MarkWatched(seasons []Season) {
	e.Status = StatusWatched
	switch e.ContentType {
	case ContentTypeMovie:
		e.WatchedEpisodes = 1
	case ContentTypeSeries:
		if e.TotalEpisodes > 0 {
			e.WatchedEpisodes = e.TotalEpisodes
			if len(seasons) > 0 {
				last := seasons[0]
				for _, s := range seasons[1:] {
					if s.Number > last.Number {
						last = s
					}
				}
				number, episodes := last.Number, last.EpisodesCount
				e.CurrentSeason = &number
				e.CurrentEpisode = &episodes
			}
		}
	}
	e.UpdatedAt = time.Now().UTC()
}

// PercentageWatched derives completion as a percentage, rounded to two
// decimals. Watched is always 100, an unknown total is always 0.
func (e WatchEntry) PercentageWatched() float64 {
	if e.Status == StatusWatched {
		return 100.0
	}
	if e.TotalEpisodes <= 0 {
		return 0.0
	}
	watched := e.WatchedEpisodes
	if watched > e.TotalEpisodes {
		watched = e.TotalEpisodes
	}
	return math.Round(float64(watched)/float64(e.TotalEpisodes)*100*100) / 100
}
