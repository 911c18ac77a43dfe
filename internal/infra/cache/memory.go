package cache

import (
	"context"
	"slices"
	"sync"
	"time"

	"justchoose/internal/domain/repository"
)

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// memoryStore keeps entries in process. Used for local runs and tests.
type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryStore creates an empty in-process cache store.
func NewMemoryStore() repository.CacheRepository {
	return &memoryStore{entries: make(map[string]memoryEntry)}
}

func (s *memoryStore) Get(_ context.Context, key string, now time.Time) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[key]
	if !ok || !entry.expiresAt.After(now) {
		return nil, false, nil
	}

	return slices.Clone(entry.payload), true, nil
}

func (s *memoryStore) Put(_ context.Context, key string, payload []byte, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = memoryEntry{payload: slices.Clone(payload), expiresAt: expiresAt}

	return nil
}

func (s *memoryStore) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for key, entry := range s.entries {
		if !entry.expiresAt.After(now) {
			delete(s.entries, key)
			removed++
		}
	}

	return removed, nil
}
