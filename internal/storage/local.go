package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage implements Storage on the local filesystem.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates the storage root if it doesn't exist.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if basePath == "" {
		basePath = "./uploads"
	}

	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{basePath: basePath}, nil
}

// Save stores a file under the storage root. Durability before return is
// what lets the orchestrator append the record only after the bytes are
// safely on disk.
func (s *LocalStorage) Save(ctx context.Context, path string, reader io.Reader) (int64, error) {
	fullPath := filepath.Join(s.basePath, path)

	// MkdirAll tolerates "already exists", so concurrent submissions can
	// race on directory creation safely.
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return 0, fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}

	written, err := io.Copy(file, reader)
	if err != nil {
		file.Close()
		return written, fmt.Errorf("failed to write file: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return written, fmt.Errorf("failed to sync file: %w", err)
	}
	if err := file.Close(); err != nil {
		return written, fmt.Errorf("failed to close file: %w", err)
	}

	return written, nil
}

// Delete removes a file; missing files are fine.
func (s *LocalStorage) Delete(ctx context.Context, path string) error {
	fullPath := filepath.Join(s.basePath, path)

	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// Exists checks for a file under the storage root.
func (s *LocalStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.basePath, path))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// FullPath resolves a storage path to its on-disk location.
func (s *LocalStorage) FullPath(path string) string {
	return filepath.Join(s.basePath, path)
}
