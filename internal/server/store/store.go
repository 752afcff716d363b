// Package store provides the server-side draft store: an in-memory list
// persisted to a JSON snapshot file with atomic writes.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ManahilHabibb/DraftAI/internal/draft"
)

const snapshotVersion = 1

type snapshot struct {
	Version int           `json:"version"`
	Drafts  []draft.Draft `json:"drafts"`
}

// Store holds drafts in memory and mirrors every mutation to disk.
// Unlike the client-side cache, this is shared across request handlers and
// therefore locked.
type Store struct {
	mu     sync.RWMutex
	path   string
	drafts []draft.Draft
}

// Open loads the snapshot at path, or starts empty when it doesn't exist.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("reading draft snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing draft snapshot: %w", err)
	}
	if snap.Version != 0 && snap.Version != snapshotVersion {
		return nil, fmt.Errorf("unsupported draft snapshot version %d", snap.Version)
	}

	s.drafts = snap.Drafts
	return s, nil
}

// List returns all drafts in insertion order.
func (s *Store) List() []draft.Draft {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]draft.Draft, len(s.drafts))
	copy(out, s.drafts)
	return out
}

// Get returns the draft with the given id.
func (s *Store) Get(id string) (draft.Draft, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.drafts {
		if d.ID == id {
			return d, true
		}
	}
	return draft.Draft{}, false
}

// Create appends a new draft with a fresh id and server timestamps.
func (s *Store) Create(title, content string) (draft.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	d := draft.Draft{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.drafts = append(s.drafts, d)

	if err := s.persist(); err != nil {
		s.drafts = s.drafts[:len(s.drafts)-1]
		return draft.Draft{}, err
	}
	return d, nil
}

// Update replaces the fields that are non-nil, leaving the others as they
// were, and refreshes updated_at. The second return is false when no draft
// has the given id.
func (s *Store) Update(id string, title, content *string) (draft.Draft, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.drafts {
		if s.drafts[i].ID != id {
			continue
		}

		prev := s.drafts[i]
		if title != nil {
			s.drafts[i].Title = *title
		}
		if content != nil {
			s.drafts[i].Content = *content
		}
		s.drafts[i].UpdatedAt = time.Now().UTC()

		if err := s.persist(); err != nil {
			s.drafts[i] = prev
			return draft.Draft{}, true, err
		}
		return s.drafts[i], true, nil
	}
	return draft.Draft{}, false, nil
}

// Delete removes the draft with the given id. The return is false when no
// draft has that id.
func (s *Store) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.drafts {
		if s.drafts[i].ID != id {
			continue
		}

		removed := s.drafts[i]
		s.drafts = append(s.drafts[:i], s.drafts[i+1:]...)

		if err := s.persist(); err != nil {
			s.drafts = append(s.drafts[:i], append([]draft.Draft{removed}, s.drafts[i:]...)...)
			return true, err
		}
		return true, nil
	}
	return false, nil
}

// persist writes the snapshot via temp file + rename. Callers hold the lock.
func (s *Store) persist() error {
	if s.path == "" {
		return nil // memory-only store, used by tests
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	data, err := json.MarshalIndent(snapshot{Version: snapshotVersion, Drafts: s.drafts}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding draft snapshot: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o640); err != nil {
		return fmt.Errorf("writing draft snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing draft snapshot: %w", err)
	}
	return nil
}
