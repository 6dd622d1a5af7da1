package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileBackend stores each collection as <dir>/<collection>.json.
type FileBackend struct {
	dir string
}

// NewFileBackend creates the data directory if needed and returns a
// backend rooted there.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) path(collection string) string {
	return filepath.Join(b.dir, collection+".json")
}

// Read returns the raw document, or (nil, nil) when the file is absent.
func (b *FileBackend) Read(ctx context.Context, collection string) ([]byte, error) {
	data, err := os.ReadFile(b.path(collection))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Write replaces the document on disk.
func (b *FileBackend) Write(ctx context.Context, collection string, data []byte) error {
	return os.WriteFile(b.path(collection), data, 0644)
}
