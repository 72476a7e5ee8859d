package session

import (
	"context"
	"strings"
	"sync"
)

// MemoryStore keeps identities in process memory; used when Redis is unavailable
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]map[string]string
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]map[string]string)}
}

// Load implements Store
func (s *MemoryStore) Load(_ context.Context, id string) (*Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return identityFromFields(s.sessions[id]), nil
}

// Save implements Store
func (s *MemoryStore) Save(_ context.Context, id string, identity Identity) error {
	if identity.UserID == "" {
		return ErrInvalidIdentity
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Own the key and values; callers may pass strings backed by reused buffers
	s.sessions[strings.Clone(id)] = map[string]string{
		KeyUserID:   strings.Clone(identity.UserID),
		KeyUsername: strings.Clone(identity.Username),
	}
	return nil
}

// Clear implements Store
func (s *MemoryStore) Clear(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Fields returns a copy of the raw entries of a session
func (s *MemoryStore) Fields(id string) map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.sessions[id]))
	for k, v := range s.sessions[id] {
		out[k] = v
	}
	return out
}
