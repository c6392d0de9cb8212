package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/motiv8-batch/internal/logger"
	"github.com/sbilibin2017/motiv8-batch/internal/models"
	"github.com/sbilibin2017/motiv8-batch/internal/npy"
)

//go:generate mockgen -source=embedding.go -destination=embedding_mock_test.go -package=services

// UserWriter records embedding results on the user.
type UserWriter interface {
	UpdateEmbedding(ctx context.Context, userID uuid.UUID, embeddingKey string, gender models.Gender) error // Points the user at a new embedding
}

// EmbeddingExtractor is the face embedding extraction capability.
type EmbeddingExtractor interface {
	ExtractEmbedding(ctx context.Context, img []byte) (models.EmbeddingResult, error) // Returns the embedding of the first face
}

// FileStorage is one artifact tier.
type FileStorage interface {
	Save(ctx context.Context, key string, data []byte) (string, error)
	SaveFromLocal(ctx context.Context, key string, localPath string) (string, error)
	Get(ctx context.Context, key string) ([]byte, error)
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) (bool, error)
	DownloadToLocal(ctx context.Context, key string, localPath string) (string, error)
}

// artifactTimeLayout prefixes generated artifact names.
const artifactTimeLayout = "20060102_150405"

// EmbeddingService keeps each user's face embedding cached in storage.
type EmbeddingService struct {
	users      UserWriter
	extractor  EmbeddingExtractor
	uploads    FileStorage
	embeddings FileStorage
	clock      func() time.Time
}

// NewEmbeddingService creates a new EmbeddingService.
func NewEmbeddingService(users UserWriter, extractor EmbeddingExtractor, uploads, embeddings FileStorage) *EmbeddingService {
	return &EmbeddingService{
		users:      users,
		extractor:  extractor,
		uploads:    uploads,
		embeddings: embeddings,
		clock:      time.Now,
	}
}

// Ensure makes sure the user has a stored embedding and a known gender.
// On extraction the user is updated in place with the new key and gender.
func (s *EmbeddingService) Ensure(ctx context.Context, user *models.UserDB) (models.EmbeddingStatus, error) {
	if !user.HasSourcePhoto() {
		logger.Log.Warnw("user has no source photo", "user_id", user.UserID)
		return models.EmbeddingFailed, ErrMissingSourcePhoto
	}

	if s.cached(ctx, user) {
		logger.Log.Infow("embedding cache hit", "user_id", user.UserID, "key", *user.EmbeddingKey)
		return models.EmbeddingExists, nil
	}

	photoKey := *user.SourcePhotoKey
	ok, err := s.uploads.Exists(ctx, photoKey)
	if err != nil {
		logger.Log.Errorw("failed to check source photo", "user_id", user.UserID, "key", photoKey, "error", err)
		return models.EmbeddingFailed, err
	}
	if !ok {
		logger.Log.Warnw("source photo not found in storage", "user_id", user.UserID, "key", photoKey)
		return models.EmbeddingFailed, fmt.Errorf("%w: %s", ErrMissingSourcePhoto, photoKey)
	}

	photo, err := s.uploads.Get(ctx, photoKey)
	if err != nil {
		logger.Log.Errorw("failed to read source photo", "user_id", user.UserID, "key", photoKey, "error", err)
		return models.EmbeddingFailed, err
	}

	res, err := s.extractor.ExtractEmbedding(ctx, photo)
	if err != nil {
		logger.Log.Warnw("embedding extraction failed", "user_id", user.UserID, "error", err)
		return models.EmbeddingFailed, err
	}

	gender, ok := models.ParseGender(res.Gender)
	if !ok {
		gender = models.GenderMale
	}

	data, err := npy.Encode(res.Embedding)
	if err != nil {
		logger.Log.Errorw("failed to encode embedding", "user_id", user.UserID, "error", err)
		return models.EmbeddingFailed, err
	}

	key := embeddingKey(s.clock(), photoKey)
	if _, err := s.embeddings.Save(ctx, key, data); err != nil {
		logger.Log.Errorw("failed to store embedding", "user_id", user.UserID, "key", key, "error", err)
		return models.EmbeddingFailed, err
	}

	// The artifact is written before the row references it.
	if err := s.users.UpdateEmbedding(ctx, user.UserID, key, gender); err != nil {
		logger.Log.Errorw("failed to record embedding", "user_id", user.UserID, "key", key, "error", err)
		return models.EmbeddingFailed, err
	}

	g := string(gender)
	user.EmbeddingKey = &key
	user.Gender = &g

	logger.Log.Infow("embedding extracted",
		"user_id", user.UserID,
		"key", key,
		"gender", gender,
		"faces", res.FaceCount,
	)

	return models.EmbeddingExtracted, nil
}

func (s *EmbeddingService) cached(ctx context.Context, user *models.UserDB) bool {
	if !user.HasEmbedding() {
		return false
	}
	if _, ok := user.KnownGender(); !ok {
		logger.Log.Infow("gender unknown, re-extracting embedding", "user_id", user.UserID)
		return false
	}

	ok, err := s.embeddings.Exists(ctx, *user.EmbeddingKey)
	if err != nil {
		logger.Log.Warnw("failed to check embedding, re-extracting", "user_id", user.UserID, "key", *user.EmbeddingKey, "error", err)
		return false
	}
	if !ok {
		logger.Log.Warnw("embedding referenced but missing, re-extracting", "user_id", user.UserID, "key", *user.EmbeddingKey)
	}
	return ok
}

func embeddingKey(now time.Time, photoKey string) string {
	base := filepath.Base(photoKey)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("%s_%s.npy", now.Format(artifactTimeLayout), base)
}
