// Package contacts maintains the durable contact directory: an ordered list
// of open-schema profile records looked up by name, with a timestamped backup
// taken before every overwrite.
package contacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Contact is one profile record. "name" is the identity key; any other
// fields (notes, phone, ...) are carried through untouched.
type Contact map[string]any

// Name returns the record's identity key, or "" if unset.
func (c Contact) Name() string {
	name, _ := c["name"].(string)
	return name
}

// Directory persists the contact list as a single JSON file.
type Directory struct {
	path string
	now  func() time.Time
}

// NewDirectory creates a directory backed by the given file path.
func NewDirectory(path string) *Directory {
	return &Directory{path: path, now: time.Now}
}

// Load reads all contact records. A missing file yields an empty list with
// no error.
func (d *Directory) Load() ([]Contact, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Contact{}, nil
		}
		return nil, fmt.Errorf("failed to read contacts: %w", err)
	}

	var list []Contact
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse contacts: %w", err)
	}
	return list, nil
}

// Save writes the full record set. When backup is true and a prior file
// exists, it is first renamed to a timestamped sibling
// (contacts_20260825_071500.json.bak) so the previous state survives the
// overwrite.
func (d *Directory) Save(list []Contact, backup bool) error {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal contacts: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(d.path), 0755); err != nil {
		return fmt.Errorf("failed to create contacts directory: %w", err)
	}

	if backup {
		if _, err := os.Stat(d.path); err == nil {
			if err := os.Rename(d.path, d.backupPath()); err != nil {
				return fmt.Errorf("failed to back up contacts: %w", err)
			}
		}
	}

	tmp := d.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write contacts: %w", err)
	}
	if err := os.Rename(tmp, d.path); err != nil {
		return fmt.Errorf("failed to replace contacts: %w", err)
	}
	return nil
}

func (d *Directory) backupPath() string {
	ext := filepath.Ext(d.path)
	stem := strings.TrimSuffix(filepath.Base(d.path), ext)
	stamp := d.now().Format("20060102_150405")
	return filepath.Join(filepath.Dir(d.path), fmt.Sprintf("%s_%s%s.bak", stem, stamp, ext))
}

// Upsert merges fields into the record named name, creating the record if it
// does not exist. Later values win per field. The returned slice must be
// saved by the caller.
func Upsert(list []Contact, name string, fields map[string]any) []Contact {
	for _, c := range list {
		if c.Name() == name {
			for k, v := range fields {
				c[k] = v
			}
			return list
		}
	}

	created := Contact{"name": name}
	for k, v := range fields {
		created[k] = v
	}
	return append(list, created)
}

// Find returns the first record named name.
func Find(list []Contact, name string) (Contact, bool) {
	for _, c := range list {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}
