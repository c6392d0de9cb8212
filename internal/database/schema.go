package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/motiv8-batch/internal/logger"
)

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		google_id VARCHAR(255) UNIQUE,
		selfie_filename VARCHAR(512),
		selfie_embedding_filename VARCHAR(512),
		gender VARCHAR(16),
		workout_days JSONB NOT NULL DEFAULT '{"monday":false,"tuesday":false,"wednesday":false,"thursday":false,"friday":false,"saturday":false,"sunday":false}',
		mode VARCHAR(16),
		anti_motivation_mode BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS generated_images (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		image_key VARCHAR(512) NOT NULL,
		generation_date DATE NOT NULL,
		generated_at_ms BIGINT NOT NULL,
		mode VARCHAR(16) NOT NULL,
		is_override BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_generated_images_date ON generated_images (generation_date)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_generated_images_user_day
		ON generated_images (user_id, generation_date) WHERE is_override = FALSE`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		google_id TEXT UNIQUE,
		selfie_filename TEXT,
		selfie_embedding_filename TEXT,
		gender TEXT,
		workout_days TEXT NOT NULL DEFAULT '{"monday":false,"tuesday":false,"wednesday":false,"thursday":false,"friday":false,"saturday":false,"sunday":false}',
		mode TEXT,
		anti_motivation_mode BOOLEAN NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS generated_images (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		image_key TEXT NOT NULL,
		generation_date TEXT NOT NULL,
		generated_at_ms INTEGER NOT NULL,
		mode TEXT NOT NULL,
		is_override BOOLEAN NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_generated_images_date ON generated_images (generation_date)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_generated_images_user_day
		ON generated_images (user_id, generation_date) WHERE is_override = 0`,
}

// Migrate creates the tables the batch reads and writes when they are missing.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	var stmts []string
	switch db.DriverName() {
	case DriverPostgres:
		stmts = postgresSchema
	case DriverSQLite:
		stmts = sqliteSchema
	default:
		return fmt.Errorf("no schema for driver %q", db.DriverName())
	}

	for _, stmt := range stmts {
		_, err := db.ExecContext(ctx, stmt)

		logger.Log.Infow(
			"query", strings.Join(strings.Fields(stmt), " "),
			"error", err,
		)

		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	return nil
}
