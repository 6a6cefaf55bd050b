package apperr

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestFromDBNoRowsIsNotFound(t *testing.T) {
	assert.ErrorIs(t, FromDB(sql.ErrNoRows), ErrNotFound)
}

func TestFromDBConstraintViolations(t *testing.T) {
	tests := []struct {
		name       string
		code       pq.ErrorCode
		constraint string
		want       error
	}{
		{
			name:       "duplicate watchlist entry",
			code:       "23505",
			constraint: "uq_user_content",
			want:       ErrConflict,
		},
		{
			name:       "duplicate season number",
			code:       "23505",
			constraint: "uq_series_season_number",
			want:       ErrConflict,
		},
		{
			name:       "delete blocked by live reference",
			code:       "23503",
			constraint: "watch_entries_movie_id_fkey",
			want:       ErrConflict,
		},
		{
			name:       "rejected status value",
			code:       "23514",
			constraint: "watch_entries_status_check",
			want:       ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromDB(&pq.Error{Code: tt.code, Constraint: tt.constraint})
			assert.ErrorIs(t, got, tt.want)
			assert.Contains(t, got.Error(), tt.constraint)
		})
	}
}

func TestFromDBSeesWrappedDriverErrors(t *testing.T) {
	wrapped := fmt.Errorf("insert watch entry: %w", &pq.Error{Code: "23505", Constraint: "uq_user_content"})
	assert.ErrorIs(t, FromDB(wrapped), ErrConflict)
}

func TestFromDBPassesUnknownErrorsThrough(t *testing.T) {
	assert.NoError(t, FromDB(nil))

	boom := errors.New("connection reset")
	got := FromDB(boom)
	assert.Equal(t, boom, got)
	assert.NotErrorIs(t, got, ErrConflict)
	assert.NotErrorIs(t, got, ErrNotFound)
	assert.NotErrorIs(t, got, ErrValidation)

	deadlock := FromDB(&pq.Error{Code: "40P01"})
	assert.NotErrorIs(t, deadlock, ErrConflict)
}
