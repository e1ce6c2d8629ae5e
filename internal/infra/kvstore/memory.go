package kvstore

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps values in process memory; contents are lost on restart.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, visitorID uuid.UUID, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[namespacedKey("", visitorID, key)]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (s *MemoryStore) Set(_ context.Context, visitorID uuid.UUID, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[namespacedKey("", visitorID, key)] = stored
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, visitorID uuid.UUID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, namespacedKey("", visitorID, key))
	return nil
}
