package services

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sbilibin2017/motiv8-batch/internal/logger"
)

// Workspace hands out per-user scratch directories.
// When artifacts live in a remote tier every scratch directory is temporary and
// removed on release. With the local tier the root is the persistent store and
// nothing is removed.
type Workspace struct {
	root      string
	ephemeral bool
}

func NewWorkspace(root string, ephemeral bool) *Workspace {
	return &Workspace{root: root, ephemeral: ephemeral}
}

// Scratch is one user's working directory.
type Scratch struct {
	dir       string
	ephemeral bool
}

// Acquire returns a scratch directory for one user's processing.
func (w *Workspace) Acquire() (*Scratch, error) {
	if err := os.MkdirAll(w.root, 0o755); err != nil {
		return nil, fmt.Errorf("create workspace root: %w", err)
	}
	if !w.ephemeral {
		return &Scratch{dir: w.root}, nil
	}

	dir, err := os.MkdirTemp(w.root, "user-*")
	if err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}
	return &Scratch{dir: dir, ephemeral: true}, nil
}

// Path returns a file location inside the scratch directory.
func (s *Scratch) Path(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}

// Release removes temporary files. It is safe to call more than once.
func (s *Scratch) Release() {
	if s == nil || !s.ephemeral {
		return
	}
	if err := os.RemoveAll(s.dir); err != nil {
		logger.Log.Warnw("failed to remove scratch dir", "dir", s.dir, "error", err)
	}
}
