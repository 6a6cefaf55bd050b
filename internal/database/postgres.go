package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"watch-tracker-service/internal/config"
)

// NewPostgres creates a new PostgreSQL connection and runs migrations.
func NewPostgres(cfg config.DBConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)

	slog.Info("connected to PostgreSQL", "db", cfg.DBName)

	if err := runMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func runMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS movies (
			id SERIAL PRIMARY KEY,
			title VARCHAR(120) NOT NULL,
			genre VARCHAR(50),
			release_year INTEGER,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS series (
			id SERIAL PRIMARY KEY,
			title VARCHAR(120) NOT NULL,
			total_seasons INTEGER NOT NULL DEFAULT 1,
			synopsis TEXT,
			genres VARCHAR(150),
			image_url VARCHAR(255),
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS seasons (
			id SERIAL PRIMARY KEY,
			series_id INTEGER NOT NULL REFERENCES series(id) ON DELETE CASCADE,
			number INTEGER NOT NULL,
			episodes_count INTEGER NOT NULL DEFAULT 0,
			CONSTRAINT uq_series_season_number UNIQUE (series_id, number)
		)`,
		// Users are identified by an externally supplied ID; no API writes
		// this table and watch_entries carries no FK to it.
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(100) UNIQUE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		// The content reference is a tagged pair (content_type, content_id);
		// the two FK columns exist for cascade and integrity only, and the
		// CHECK ties exactly one of them to the tag.
		`CREATE TABLE IF NOT EXISTS watch_entries (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL,
			content_type VARCHAR(20) NOT NULL CHECK (content_type IN ('movie', 'series')),
			content_id INTEGER NOT NULL,
			movie_id INTEGER REFERENCES movies(id) ON DELETE CASCADE,
			series_id INTEGER REFERENCES series(id) ON DELETE CASCADE,
			status VARCHAR(20) NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'watching', 'watched')),
			current_season INTEGER,
			current_episode INTEGER,
			watched_episodes INTEGER NOT NULL DEFAULT 0,
			total_episodes INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
			CONSTRAINT uq_user_content UNIQUE (user_id, content_type, content_id),
			CONSTRAINT ck_content_reference CHECK (
				(content_type = 'movie' AND movie_id IS NOT NULL AND series_id IS NULL) OR
				(content_type = 'series' AND series_id IS NOT NULL AND movie_id IS NULL)
			)
		)`,
		// Indexes for common query patterns
		`CREATE INDEX IF NOT EXISTS idx_movies_title ON movies(title)`,
		`CREATE INDEX IF NOT EXISTS idx_series_title ON series(title)`,
		`CREATE INDEX IF NOT EXISTS idx_watch_entries_user ON watch_entries(user_id, updated_at)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}

	slog.Info("database migrations completed")
	return nil
}
