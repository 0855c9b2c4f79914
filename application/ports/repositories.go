package ports

import (
	"context"
	"errors"
	"time"

	"journeymap/domain/core/entities"
)

// ProfileRepository defines the interface for profile persistence.
// This is a port in hexagonal architecture - the domain doesn't know about
// the implementation.
type ProfileRepository interface {
	// GetProfile loads a user and everything linked to them.
	// Returns a NotFound error when the user does not exist.
	GetProfile(ctx context.Context, userID string) (*entities.Profile, error)

	// SaveProfile persists a full profile (create or replace).
	SaveProfile(ctx context.Context, profile *entities.Profile) error
}

// ErrCacheMiss is returned by CacheStore.Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// CacheStore is a key-value store with TTL expiry. Keys follow the fixed
// "<type>:<owner>:<params>" structure and the maintenance operations compare
// those segments literally, so owner ids and parameter values are never
// interpreted as patterns. The store is shared across requests with no
// transactional guarantees; concurrent writers to one key race and
// last-writer-wins is accepted.
type CacheStore interface {
	// Get returns the value for key, or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// DeleteEntries removes every entry belonging to ownerID, narrowed to
	// one entry type when entryType is non-empty, and returns how many
	// were removed.
	DeleteEntries(ctx context.Context, entryType, ownerID string) (int, error)

	// CountEntries counts entries of the given type across all owners.
	CountEntries(ctx context.Context, entryType string) (int, error)
}
