package cache

import (
	"context"
	"errors"
	"time"

	"journeymap/application/ports"
	apperrors "journeymap/pkg/errors"

	"github.com/redis/go-redis/v9"
)

// scanBatch is the COUNT hint for SCAN sweeps.
const scanBatch = 200

// RedisStore is a CacheStore backed by Redis. Maintenance operations use
// SCAN, never KEYS.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis store from a URL such as
// "redis://localhost:6379/0".
func NewRedisStore(url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, apperrors.NewCacheError("parse redis url", err)
	}
	return &RedisStore{client: redis.NewClient(opts)}, nil
}

// Ping verifies connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Get retrieves the value for key, or ports.ErrCacheMiss.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrCacheMiss
	}
	if err != nil {
		return nil, apperrors.NewCacheError("get", err)
	}
	return raw, nil
}

// Set stores value under key with the given TTL.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return apperrors.NewCacheError("set", err)
	}
	return nil
}

// DeleteEntries removes every entry for ownerID, narrowed to entryType when
// non-empty. Keys are filtered by literal segment comparison after the scan;
// MATCH is not used, so ids containing glob metacharacters are handled like
// any other id.
func (s *RedisStore) DeleteEntries(ctx context.Context, entryType, ownerID string) (int, error) {
	removed := 0
	iter := s.client.Scan(ctx, 0, "", scanBatch).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if !keyMatches(key, entryType, ownerID) {
			continue
		}
		if err := s.client.Del(ctx, key).Err(); err != nil {
			return removed, apperrors.NewCacheError("delete", err)
		}
		removed++
	}
	if err := iter.Err(); err != nil {
		return removed, apperrors.NewCacheError("scan", err)
	}
	return removed, nil
}

// CountEntries counts entries of the given type across all owners.
func (s *RedisStore) CountEntries(ctx context.Context, entryType string) (int, error) {
	count := 0
	iter := s.client.Scan(ctx, 0, "", scanBatch).Iterator()
	for iter.Next(ctx) {
		if keyMatches(iter.Val(), entryType, "") {
			count++
		}
	}
	if err := iter.Err(); err != nil {
		return 0, apperrors.NewCacheError("scan", err)
	}
	return count, nil
}
