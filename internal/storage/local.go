package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sbilibin2017/motiv8-batch/internal/logger"
)

// Local stores artifacts in a directory on the local filesystem.
// The directory is the persistent store, so local paths returned by it are never scratch.
type Local struct {
	dir string
}

// NewLocal creates the directory if needed.
func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir %s: %w", dir, err)
	}
	return &Local{dir: dir}, nil
}

// Path returns the location of key inside the directory.
func (l *Local) Path(key string) string {
	return filepath.Join(l.dir, key)
}

func (l *Local) Save(ctx context.Context, key string, data []byte) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}

	path := l.Path(key)
	err := os.WriteFile(path, data, 0o644)

	logger.Log.Infow("saved to local", "path", path, "bytes", len(data), "error", err)

	if err != nil {
		return "", err
	}
	return path, nil
}

func (l *Local) SaveFromLocal(ctx context.Context, key string, localPath string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}

	dst := l.Path(key)
	if same, _ := samePath(dst, localPath); same {
		return dst, nil
	}

	data, err := os.ReadFile(localPath)
	if err != nil {
		return "", err
	}
	return l.Save(ctx, key, data)
}

func (l *Local) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.Path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, l.dir, key)
	}
	return data, err
}

func (l *Local) Exists(ctx context.Context, key string) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}

	_, err := os.Stat(l.Path(key))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

func (l *Local) Delete(ctx context.Context, key string) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}

	path := l.Path(key)
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	logger.Log.Infow("deleted from local", "path", path)
	return true, nil
}

// DownloadToLocal ignores localPath and returns the stored file itself.
func (l *Local) DownloadToLocal(ctx context.Context, key string, localPath string) (string, error) {
	ok, err := l.Exists(ctx, key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: %s/%s", ErrNotFound, l.dir, key)
	}
	return l.Path(key), nil
}

func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	return absA == absB, nil
}
