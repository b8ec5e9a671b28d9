// Package notes keeps a single current text per key plus an append-only
// history of every revision, persisted as one JSON file.
package notes

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Revision is one historical value of a key's notes.
type Revision struct {
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
}

// Entry holds the latest text for a key and its full revision history.
type Entry struct {
	Current string     `json:"current"`
	History []Revision `json:"history"`
}

// Store is a file-backed notes store. Keys are arbitrary strings, typically
// contact names or cadence tags.
type Store struct {
	path string
	now  func() time.Time
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path, now: time.Now}
}

func (s *Store) load() (map[string]Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]Entry{}, nil
		}
		return map[string]Entry{}, fmt.Errorf("failed to read notes: %w", err)
	}

	entries := map[string]Entry{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return map[string]Entry{}, fmt.Errorf("failed to parse notes: %w", err)
	}
	return entries, nil
}

func (s *Store) save(entries map[string]Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal notes: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create notes directory: %w", err)
	}

	// Temp-file-and-rename so a failed write never corrupts the last good
	// file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write notes: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace notes: %w", err)
	}
	return nil
}

// Current returns the latest text recorded for key, or "" if none exists.
func (s *Store) Current(key string) (string, error) {
	entries, err := s.load()
	if err != nil {
		return "", err
	}
	return entries[key].Current, nil
}

// Record sets key's current text and appends a timestamped revision to its
// history. Prior revisions are never modified or pruned.
func (s *Store) Record(key, text string) error {
	entries, err := s.load()
	if err != nil {
		return err
	}

	entry := entries[key]
	entry.Current = text
	entry.History = append(entry.History, Revision{
		Timestamp: s.now().Format(time.RFC3339),
		Text:      text,
	})
	entries[key] = entry

	return s.save(entries)
}

// History returns key's revisions in chronological order.
func (s *Store) History(key string) ([]Revision, error) {
	entries, err := s.load()
	if err != nil {
		return nil, err
	}
	return entries[key].History, nil
}
