package rotation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// StateStore abstracts rotation state persistence so the scheduler can be
// tested against an in-memory implementation.
type StateStore interface {
	Load() (State, error)
	Save(state State) error
}

// FileStore persists the rotation state as a single JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given file path. The file is
// created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the persisted state. A missing file yields the default state
// with no error; unreadable or malformed content also yields the default
// state, alongside an error the caller can log before continuing.
func (s *FileStore) Load() (State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultState(), nil
		}
		return DefaultState(), fmt.Errorf("failed to read rotation state: %w", err)
	}

	// Unmarshal over the default state so fields absent from older files
	// keep their defaults (notably the -1 indices).
	state := DefaultState()
	if err := json.Unmarshal(data, &state); err != nil {
		return DefaultState(), fmt.Errorf("failed to parse rotation state: %w", err)
	}
	return state, nil
}

// Save writes the state atomically: marshal to a temp file in the same
// directory, then rename over the destination.
func (s *FileStore) Save(state State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal rotation state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write rotation state: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace rotation state: %w", err)
	}
	return nil
}
