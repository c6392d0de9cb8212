package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"time"

	gcs "cloud.google.com/go/storage"
	"github.com/sbilibin2017/motiv8-batch/internal/logger"
	"google.golang.org/api/option"
)

const objectTimeout = 2 * time.Minute

// NewGCSClient creates a storage client. A non-empty emulatorHost points the
// client at a local emulator without authentication.
func NewGCSClient(ctx context.Context, emulatorHost string) (*gcs.Client, error) {
	host := strings.TrimRight(strings.TrimSpace(emulatorHost), "/")
	if host == "" {
		return gcs.NewClient(ctx, option.WithScopes(gcs.ScopeReadWrite))
	}

	_ = os.Setenv("STORAGE_EMULATOR_HOST", host)
	return gcs.NewClient(ctx, option.WithoutAuthentication())
}

// GCS stores artifacts under a directory prefix of a bucket.
type GCS struct {
	client *gcs.Client
	bucket string
	dir    string
}

func NewGCS(client *gcs.Client, bucket, dir string) *GCS {
	return &GCS{client: client, bucket: bucket, dir: dir}
}

func (g *GCS) objectKey(key string) string {
	return path.Join(g.dir, key)
}

func (g *GCS) object(key string) *gcs.ObjectHandle {
	return g.client.Bucket(g.bucket).Object(g.objectKey(key))
}

func (g *GCS) Save(ctx context.Context, key string, data []byte) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, objectTimeout)
	defer cancel()

	w := g.object(key).NewWriter(ctx)
	w.ChunkSize = 0
	if ct := contentTypeForKey(key); ct != "" {
		w.ContentType = ct
	}

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write object %s: %w", g.objectKey(key), err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close object writer %s: %w", g.objectKey(key), err)
	}

	logger.Log.Infow("saved to bucket", "bucket", g.bucket, "key", g.objectKey(key), "bytes", len(data))
	return g.objectKey(key), nil
}

func (g *GCS) SaveFromLocal(ctx context.Context, key string, localPath string) (string, error) {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return "", err
	}
	return g.Save(ctx, key, data)
}

func (g *GCS) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	r, err := g.object(key).NewReader(ctx)
	if err != nil {
		return nil, g.wrapErr(key, err)
	}
	defer r.Close()

	return io.ReadAll(r)
}

func (g *GCS) Exists(ctx context.Context, key string) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}

	_, err := g.object(key).Attrs(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (g *GCS) Delete(ctx context.Context, key string) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}

	err := g.object(key).Delete(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return false, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to delete object", "bucket", g.bucket, "key", g.objectKey(key), "error", err)
		return false, err
	}

	logger.Log.Infow("deleted from bucket", "bucket", g.bucket, "key", g.objectKey(key))
	return true, nil
}

func (g *GCS) DownloadToLocal(ctx context.Context, key string, localPath string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}

	r, err := g.object(key).NewReader(ctx)
	if err != nil {
		return "", g.wrapErr(key, err)
	}
	defer r.Close()

	f, err := os.Create(localPath)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(localPath)
		return "", fmt.Errorf("download %s: %w", g.objectKey(key), err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	logger.Log.Infow("downloaded from bucket", "bucket", g.bucket, "key", g.objectKey(key), "path", localPath)
	return localPath, nil
}

func (g *GCS) wrapErr(key string, err error) error {
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return fmt.Errorf("%w: gs://%s/%s", ErrNotFound, g.bucket, g.objectKey(key))
	}
	return err
}

func contentTypeForKey(key string) string {
	switch strings.ToLower(path.Ext(key)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".npy":
		return "application/octet-stream"
	default:
		return ""
	}
}
