// Package cache provides CacheStore implementations: an in-process store
// for development and tests, and a Redis-backed store for deployments with
// more than one instance.
package cache

import (
	"context"
	"sync"
	"time"

	"journeymap/application/ports"
)

// MemoryStore is an in-process CacheStore with TTL expiry.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]memoryItem
}

type memoryItem struct {
	value     []byte
	expiresAt time.Time
}

// NewMemoryStore creates a memory store and starts its cleanup goroutine.
func NewMemoryStore() *MemoryStore {
	store := &MemoryStore{
		items: make(map[string]memoryItem),
	}
	go store.cleanupExpired()
	return store
}

// Get retrieves the value for key, or ports.ErrCacheMiss.
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.items[key]
	if !exists || time.Now().After(item.expiresAt) {
		return nil, ports.ErrCacheMiss
	}
	return item.value, nil
}

// Set stores value under key with the given TTL.
func (s *MemoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = memoryItem{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// DeleteEntries removes every live entry for ownerID, narrowed to entryType
// when non-empty.
func (s *MemoryStore) DeleteEntries(ctx context.Context, entryType, ownerID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	removed := 0
	for key, item := range s.items {
		if keyMatches(key, entryType, ownerID) {
			if !now.After(item.expiresAt) {
				removed++
			}
			delete(s.items, key)
		}
	}
	return removed, nil
}

// CountEntries counts live entries of the given type.
func (s *MemoryStore) CountEntries(ctx context.Context, entryType string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()
	count := 0
	for key, item := range s.items {
		if keyMatches(key, entryType, "") && !now.After(item.expiresAt) {
			count++
		}
	}
	return count, nil
}

// cleanupExpired periodically removes expired items.
func (s *MemoryStore) cleanupExpired() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		for key, item := range s.items {
			if now.After(item.expiresAt) {
				delete(s.items, key)
			}
		}
		s.mu.Unlock()
	}
}
