package storage

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemStore is an in-memory Store used by tests and local tooling.
type MemStore struct {
	mu   sync.RWMutex
	data map[uuid.UUID]map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{data: make(map[uuid.UUID]map[string][]byte)}
}

func (s *MemStore) Get(userID uuid.UUID, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[userID][key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, true, nil
}

func (s *MemStore) Set(userID uuid.UUID, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data[userID] == nil {
		s.data[userID] = make(map[string][]byte)
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	s.data[userID][key] = cp
	return nil
}

func (s *MemStore) List(userID uuid.UUID, prefix string) (map[string][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string][]byte)
	for k, v := range s.data[userID] {
		if strings.HasPrefix(k, prefix) {
			cp := make([]byte, len(v))
			copy(cp, v)
			out[k] = cp
		}
	}
	return out, nil
}
