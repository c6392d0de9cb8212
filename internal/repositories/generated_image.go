package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/motiv8-batch/internal/logger"
	"github.com/sbilibin2017/motiv8-batch/internal/models"
)

// GeneratedImageReadRepository reads generation records.
type GeneratedImageReadRepository struct {
	db *sqlx.DB
}

func NewGeneratedImageReadRepository(db *sqlx.DB) *GeneratedImageReadRepository {
	return &GeneratedImageReadRepository{db: db}
}

// ListUserIDsByDate returns the users that already have an image for the given day (YYYY-MM-DD).
func (r *GeneratedImageReadRepository) ListUserIDsByDate(ctx context.Context, generationDate string) ([]uuid.UUID, error) {
	query := `
		SELECT DISTINCT user_id
		FROM generated_images
		WHERE generation_date = ?
	`

	var ids []uuid.UUID
	err := r.db.SelectContext(ctx, &ids, r.db.Rebind(query), generationDate)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{generationDate},
		"result", ids,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return ids, nil
}

// GeneratedImageWriteRepository persists generation records.
type GeneratedImageWriteRepository struct {
	db *sqlx.DB
}

func NewGeneratedImageWriteRepository(db *sqlx.DB) *GeneratedImageWriteRepository {
	return &GeneratedImageWriteRepository{db: db}
}

// Save inserts one generation record. A second non-override row for the same
// user and day violates the unique index and is returned as an error.
func (r *GeneratedImageWriteRepository) Save(ctx context.Context, img models.GeneratedImageDB) error {
	query := `
		INSERT INTO generated_images (id, user_id, image_key, generation_date, generated_at_ms, mode, is_override)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	if img.ImageID == uuid.Nil {
		img.ImageID = uuid.New()
	}
	args := []any{img.ImageID, img.UserID, img.ImageKey, img.GenerationDate, img.GeneratedAtMs, img.Mode, img.IsOverride}

	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
