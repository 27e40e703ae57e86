// Package recent persists the most-recently-used file list consumed by the
// UI layer.
package recent

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"pdf-toolkit/internal/domain"
)

// Store keeps an ordered most-recent-first list of file paths in a JSON
// file. Entries are deduplicated by path and capped at max; paths that no
// longer exist are filtered out at read time.
type Store struct {
	path   string
	max    int
	logger domain.Logger

	mu sync.Mutex
}

type record struct {
	Files []string `json:"files"`
}

// NewStore creates a recent-files store backed by the given JSON file.
func NewStore(path string, max int, logger domain.Logger) *Store {
	if max <= 0 {
		max = 10
	}
	return &Store{path: path, max: max, logger: logger}
}

// Add puts path at the front of the list, removing any previous entry for
// the same path and trimming the list to the configured maximum.
func (s *Store) Add(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	files, err := s.load()
	if err != nil {
		return err
	}

	updated := make([]string, 0, len(files)+1)
	updated = append(updated, path)
	for _, f := range files {
		if f == path {
			continue
		}
		updated = append(updated, f)
	}
	if len(updated) > s.max {
		updated = updated[:s.max]
	}

	return s.save(updated)
}

// List returns the recent files, most recent first, with entries whose path
// no longer exists filtered out.
func (s *Store) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	files, err := s.load()
	if err != nil {
		return nil, err
	}

	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			s.logger.Debug("dropping vanished recent file", "path", f)
			continue
		}
		existing = append(existing, f)
	}
	return existing, nil
}

func (s *Store) load() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read recent files: %w", err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		// A mangled store is not worth failing the caller over.
		s.logger.Warn("recent files store unreadable, resetting", "path", s.path, "error", err)
		return nil, nil
	}
	return rec.Files, nil
}

// save rewrites the store atomically via a temp file rename.
func (s *Store) save(files []string) error {
	data, err := json.MarshalIndent(record{Files: files}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode recent files: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write recent files: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write recent files: %w", err)
	}
	return nil
}
