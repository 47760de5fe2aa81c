package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wonny/bloodage/internal/contracts"
)

// ErrCorrupt marks a persisted batch file that exists but cannot be
// decoded. Callers must abort instead of overwriting history.
var ErrCorrupt = errors.New("batch store corrupt")

// JSONStore persists batch entries as a JSON array in a single file,
// the same format the downstream URL processor consumes.
type JSONStore struct {
	path string
}

// NewJSONStore creates a store backed by the given file path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Path returns the backing file path.
func (s *JSONStore) Path() string {
	return s.path
}

// Load reads all persisted entries. A file that does not exist yet is
// an empty history, not an error.
func (s *JSONStore) Load(_ context.Context) ([]contracts.BatchEntry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []contracts.BatchEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var entries []contracts.BatchEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrCorrupt, s.path, err)
	}

	return entries, nil
}

// Save writes the full entry set. The write goes through a temp file
// and rename so a crash mid-write never leaves a truncated store.
func (s *JSONStore) Save(_ context.Context, entries []contracts.BatchEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode entries: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename to %s: %w", s.path, err)
	}

	return nil
}
