package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sbilibin2017/motiv8-batch/internal/logger"
)

var (
	// ErrNotFound is returned when a key does not exist in a tier.
	ErrNotFound = errors.New("object not found")
	// ErrInvalidKey is returned for keys that are empty or escape the tier.
	ErrInvalidKey = errors.New("invalid object key")
)

// Tier directories.
const (
	DirUploads    = "uploads"
	DirEmbeddings = "embeddings"
	DirGenerated  = "generated"
)

// Storage is one logical directory of persistent artifacts.
type Storage interface {
	Save(ctx context.Context, key string, data []byte) (string, error)                 // Writes data and returns its location
	SaveFromLocal(ctx context.Context, key string, localPath string) (string, error)   // Uploads a local file
	Get(ctx context.Context, key string) ([]byte, error)                               // Reads the whole object
	Exists(ctx context.Context, key string) (bool, error)                              // Reports whether the key exists
	Delete(ctx context.Context, key string) (bool, error)                              // Removes the key, false if it was absent
	DownloadToLocal(ctx context.Context, key string, localPath string) (string, error) // Returns a local path holding the object
}

// Tiers groups the three artifact directories used by the batch.
type Tiers struct {
	Uploads    Storage
	Embeddings Storage
	Generated  Storage

	// Ephemeral is true when artifacts live remotely and local copies are scratch files.
	Ephemeral bool
	close     func() error
}

// Close releases the backing client, if any.
func (t *Tiers) Close() error {
	if t.close == nil {
		return nil
	}
	return t.close()
}

// Config selects the storage backend. An empty Bucket selects the local filesystem.
type Config struct {
	Bucket       string
	EmulatorHost string
	LocalRoot    string
}

// Open builds the three tiers for the configured backend.
func Open(ctx context.Context, cfg Config) (*Tiers, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		root := cfg.LocalRoot
		if root == "" {
			root = "."
		}

		tiers := &Tiers{}
		for _, t := range []struct {
			dir string
			dst *Storage
		}{
			{DirUploads, &tiers.Uploads},
			{DirEmbeddings, &tiers.Embeddings},
			{DirGenerated, &tiers.Generated},
		} {
			l, err := NewLocal(filepath.Join(root, t.dir))
			if err != nil {
				return nil, err
			}
			*t.dst = l
		}

		logger.Log.Infow("using local filesystem storage", "root", root)
		return tiers, nil
	}

	client, err := NewGCSClient(ctx, cfg.EmulatorHost)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	logger.Log.Infow("using object storage", "bucket", cfg.Bucket, "emulator_host", cfg.EmulatorHost)

	return &Tiers{
		Uploads:    NewGCS(client, cfg.Bucket, DirUploads),
		Embeddings: NewGCS(client, cfg.Bucket, DirEmbeddings),
		Generated:  NewGCS(client, cfg.Bucket, DirGenerated),
		Ephemeral:  true,
		close:      client.Close,
	}, nil
}

func validateKey(key string) error {
	if key == "" || key == "." || key == ".." ||
		strings.ContainsAny(key, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
