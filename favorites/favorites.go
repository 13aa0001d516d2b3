// Package favorites persists favorite product ids for unauthenticated
// users. Entries are UUID strings stored as a JSON array under a fixed
// key; malformed entries are dropped silently (with a warning log) and
// the corrected list is re-persisted. On login the caller syncs the list
// to the backend and clears it.
package favorites

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// StorageKey is the fixed key guest favorites are stored under.
const StorageKey = "guest_favorites"

// Storage abstracts the raw persistence (a browser's localStorage in the
// original client; a file or key-value store here). Get returns false
// when the key has never been written.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// Store manages the guest-favorites list on top of a Storage. Access is
// last-write-wins; concurrent processes sharing a Storage can race, which
// is an accepted limitation.
type Store struct {
	mu      sync.Mutex
	storage Storage
	logger  *slog.Logger
}

// NewStore creates a guest-favorites store.
func NewStore(storage Storage, logger *slog.Logger) *Store {
	return &Store{storage: storage, logger: logger}
}

// Valid returns the well-formed favorite ids. Malformed entries are
// filtered out and the cleaned list is written back, so a corrupted list
// self-heals on first read. The result is never nil.
func (s *Store) Valid() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ids := s.load()
	clean := make([]string, 0, len(ids))
	dropped := 0
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			dropped++
			continue
		}
		clean = append(clean, id)
	}

	if dropped > 0 {
		s.logger.Warn("dropped malformed guest favorite ids",
			slog.Int("dropped", dropped),
			slog.Int("kept", len(clean)),
		)
		if err := s.persist(clean); err != nil {
			s.logger.Warn("rewrite guest favorites failed", slog.String("error", err.Error()))
		}
	} else if raw == "" && len(ids) == 0 {
		// Nothing stored yet; leave the key unwritten.
		return clean
	}
	return clean
}

// Add appends a product id if it is a well-formed UUID and not already
// present. Malformed ids are rejected.
func (s *Store) Add(productID string) error {
	if _, err := uuid.Parse(productID); err != nil {
		return fmt.Errorf("invalid product id %q: %w", productID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, ids := s.load()
	for _, id := range ids {
		if id == productID {
			return nil
		}
	}
	return s.persist(append(ids, productID))
}

// Remove deletes a product id from the list. Removing an absent id is a
// no-op.
func (s *Store) Remove(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ids := s.load()
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != productID {
			out = append(out, id)
		}
	}
	if len(out) == len(ids) {
		return nil
	}
	return s.persist(out)
}

// Contains reports whether a product id is in the list.
func (s *Store) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ids := s.load()
	for _, id := range ids {
		if id == productID {
			return true
		}
	}
	return false
}

// Clear removes the stored list entirely, used after syncing favorites to
// the backend on login.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.storage.Delete(StorageKey)
}

// load reads and decodes the stored list. A missing or corrupt value
// decodes to an empty list; corruption is logged, not surfaced.
func (s *Store) load() (raw string, ids []string) {
	raw, ok := s.storage.Get(StorageKey)
	if !ok || raw == "" {
		return "", []string{}
	}

	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		s.logger.Warn("guest favorites storage corrupt, resetting",
			slog.String("error", err.Error()),
		)
		return raw, []string{}
	}
	return raw, ids
}

func (s *Store) persist(ids []string) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode guest favorites: %w", err)
	}
	if err := s.storage.Set(StorageKey, string(data)); err != nil {
		return fmt.Errorf("persist guest favorites: %w", err)
	}
	return nil
}
