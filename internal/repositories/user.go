package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/motiv8-batch/internal/logger"
	"github.com/sbilibin2017/motiv8-batch/internal/models"
)

const userColumns = `id, email, google_id, selfie_filename, selfie_embedding_filename, gender,
	workout_days, mode, anti_motivation_mode, created_at, updated_at`

// UserReadRepository reads users eligible for generation.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// ListWithSourcePhoto returns every user that uploaded a selfie, oldest first.
func (r *UserReadRepository) ListWithSourcePhoto(ctx context.Context) ([]models.UserDB, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE selfie_filename IS NOT NULL AND selfie_filename <> ''
		ORDER BY created_at, id
	`

	var users []models.UserDB
	err := r.db.SelectContext(ctx, &users, r.db.Rebind(query))

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{},
		"result", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return users, nil
}

// UserWriteRepository updates user records.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// UpdateEmbedding points the user at a new embedding artifact and records the detected gender.
func (r *UserWriteRepository) UpdateEmbedding(ctx context.Context, userID uuid.UUID, embeddingKey string, gender models.Gender) error {
	query := `
		UPDATE users
		SET selfie_embedding_filename = ?, gender = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	args := []any{embeddingKey, string(gender), userID}

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

	if err == nil && rowsAffected == 0 {
		return ErrNoRowsUpdated
	}

	return err
}
