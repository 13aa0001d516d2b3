// Package session owns the client's persisted authentication state. Token
// access goes through an explicit TokenStore handed to the HTTP client
// constructor; there are no ambient global reads. Login sets the tokens,
// logout (or a 401 from the backend) clears them.
package session

import "sync"

// TokenStore holds the bearer and refresh tokens for the current session.
// Implementations must be safe for concurrent use. The access discipline
// is last-write-wins with no transaction boundary; concurrent processes
// sharing a store can race, which is an accepted limitation.
type TokenStore interface {
	// AccessToken returns the current bearer token, empty when logged out.
	AccessToken() string

	// RefreshToken returns the current refresh token, empty when absent.
	RefreshToken() string

	// SetTokens stores a new token pair.
	SetTokens(access, refresh string) error

	// Clear removes both tokens.
	Clear() error
}

// MemoryStore is an in-process TokenStore.
type MemoryStore struct {
	mu      sync.RWMutex
	access  string
	refresh string
}

// NewMemoryStore creates an empty in-memory token store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access
}

func (s *MemoryStore) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refresh
}

func (s *MemoryStore) SetTokens(access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = access
	s.refresh = refresh
	return nil
}

func (s *MemoryStore) Clear() error {
	return s.SetTokens("", "")
}
