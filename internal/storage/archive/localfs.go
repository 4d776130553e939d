// internal/storage/archive/localfs.go
package archive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// LocalFS archives strategy configs under a directory tree, one family per
// subdirectory.
type LocalFS struct {
	basePath string
}

// NewLocalFS creates a filesystem archive rooted at basePath.
func NewLocalFS(basePath string) (*LocalFS, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("creating archive root: %w", err)
	}
	return &LocalFS{basePath: basePath}, nil
}

func (l *LocalFS) fullPath(key string) string {
	return filepath.Join(l.basePath, key)
}

func (l *LocalFS) Write(ctx context.Context, key string, data []byte) error {
	full := l.fullPath(key)
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return fmt.Errorf("creating family directory: %w", err)
	}
	return os.WriteFile(full, data, 0644)
}

func (l *LocalFS) Read(ctx context.Context, key string) ([]byte, error) {
	return os.ReadFile(l.fullPath(key))
}

// List walks the archive under prefix and returns the keys sorted, which
// orders them oldest-first since keys embed the archive timestamp.
func (l *LocalFS) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string

	err := filepath.Walk(l.fullPath(prefix), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			rel, _ := filepath.Rel(l.basePath, path)
			keys = append(keys, filepath.ToSlash(rel))
		}
		return nil
	})

	if os.IsNotExist(err) {
		return []string{}, nil
	}
	sort.Strings(keys)
	return keys, err
}

func (l *LocalFS) Exists(ctx context.Context, key string) (bool, error) {
	_, err := os.Stat(l.fullPath(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	return err == nil, err
}
