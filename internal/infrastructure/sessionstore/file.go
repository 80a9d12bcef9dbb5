// Package sessionstore provides the auth-state persistence backends: a JSON
// file for single-machine use and Redis for anything shared.
package sessionstore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/yu-shop/storefront-api/internal/core/domain"
)

// FileStore persists the auth state as a single JSON document on disk.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (*domain.AuthState, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var state domain.AuthState
	if err := json.Unmarshal(b, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *FileStore) Save(state domain.AuthState) error {
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o600)
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
