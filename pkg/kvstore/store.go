package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Store is a keyed JSON-document store. Documents are read and written whole;
// there is no partial update primitive.
type Store interface {
	// Get unmarshals the document at key into out. It reports false without
	// error when the document does not exist.
	Get(ctx context.Context, key string, out any) (bool, error)

	// Set marshals value and writes it as the whole document at key.
	Set(ctx context.Context, key string, value any) error

	// Delete removes the document at key. Missing documents are not an error.
	Delete(ctx context.Context, key string) error
}

// FileStore keeps each document as a <key>.json file under a base directory.
type FileStore struct {
	fs  afero.Fs
	dir string
}

// New creates a FileStore on the given filesystem rooted at dir.
func New(fs afero.Fs, dir string) (*FileStore, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory %q: %w", dir, err)
	}
	return &FileStore{fs: fs, dir: dir}, nil
}

// NewOnDisk creates a FileStore on the OS filesystem rooted at dir.
func NewOnDisk(dir string) (*FileStore, error) {
	return New(afero.NewOsFs(), dir)
}

// NewInMemory creates a FileStore on a memory-backed filesystem, for tests.
func NewInMemory() *FileStore {
	s, _ := New(afero.NewMemMapFs(), "/kv")
	return s
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get implements Store.
func (s *FileStore) Get(ctx context.Context, key string, out any) (bool, error) {
	data, err := afero.ReadFile(s.fs, s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read document %q: %w", key, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to decode document %q: %w", key, err)
	}
	return true, nil
}

// Set implements Store.
func (s *FileStore) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode document %q: %w", key, err)
	}

	if err := afero.WriteFile(s.fs, s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("failed to write document %q: %w", key, err)
	}
	return nil
}

// Delete implements Store.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	err := s.fs.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete document %q: %w", key, err)
	}
	return nil
}
