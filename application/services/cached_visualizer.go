package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"journeymap/application/ports"

	"go.uber.org/zap"
)

// Visualization type tags, used as cache-key prefixes and as path segments
// on the HTTP surface.
const (
	VizSkillNetwork    = "skill-network"
	VizTimeline        = "progress-timeline"
	VizSkillRadar      = "skill-radar"
	VizGoalProgress    = "goal-progress"
	VizRecommendations = "career-recommendations"
)

// VizTypes lists every known visualization type.
var VizTypes = []string{
	VizSkillNetwork,
	VizTimeline,
	VizSkillRadar,
	VizGoalProgress,
	VizRecommendations,
}

// IsVizType reports whether t names a known visualization type.
func IsVizType(t string) bool {
	for _, v := range VizTypes {
		if v == t {
			return true
		}
	}
	return false
}

// CacheStats summarizes cached visualization entries.
type CacheStats struct {
	TotalEntries int            `json:"total_entries"`
	ByType       map[string]int `json:"by_type"`
}

// CachedVisualizer wraps a Visualizer with read-through caching. Store
// failures degrade to building fresh results; a broken cache never fails a
// request.
type CachedVisualizer struct {
	inner  Visualizer
	store  ports.CacheStore
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedVisualizer wraps inner with caching. ttl applies to every entry.
func NewCachedVisualizer(inner Visualizer, store ports.CacheStore, ttl time.Duration, logger *zap.Logger) *CachedVisualizer {
	return &CachedVisualizer{
		inner:  inner,
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *CachedVisualizer) SkillNetwork(ctx context.Context, userID string, opts NetworkOptions) (*SkillNetworkResult, error) {
	return cached(ctx, c, VizSkillNetwork, userID, opts.params(), func() (*SkillNetworkResult, error) {
		return c.inner.SkillNetwork(ctx, userID, opts)
	})
}

func (c *CachedVisualizer) ProgressTimeline(ctx context.Context, userID string, opts TimelineOptions) (*TimelineResult, error) {
	return cached(ctx, c, VizTimeline, userID, opts.params(), func() (*TimelineResult, error) {
		return c.inner.ProgressTimeline(ctx, userID, opts)
	})
}

func (c *CachedVisualizer) SkillRadar(ctx context.Context, userID string, opts RadarOptions) (*RadarResult, error) {
	return cached(ctx, c, VizSkillRadar, userID, opts.params(), func() (*RadarResult, error) {
		return c.inner.SkillRadar(ctx, userID, opts)
	})
}

func (c *CachedVisualizer) GoalProgress(ctx context.Context, userID string, opts GoalOptions) (*GoalProgressResult, error) {
	return cached(ctx, c, VizGoalProgress, userID, opts.params(), func() (*GoalProgressResult, error) {
		return c.inner.GoalProgress(ctx, userID, opts)
	})
}

func (c *CachedVisualizer) CareerRecommendations(ctx context.Context, userID string) (*RecommendationsResult, error) {
	return cached(ctx, c, VizRecommendations, userID, nil, func() (*RecommendationsResult, error) {
		return c.inner.CareerRecommendations(ctx, userID)
	})
}

// Invalidate removes cached entries for a user. vizType narrows the sweep to
// one visualization type; empty clears them all. Returns how many entries
// were removed.
func (c *CachedVisualizer) Invalidate(ctx context.Context, userID, vizType string) (int, error) {
	return c.store.DeleteEntries(ctx, vizType, userID)
}

// Stats counts cached entries overall and per visualization type.
func (c *CachedVisualizer) Stats(ctx context.Context) (*CacheStats, error) {
	stats := &CacheStats{ByType: make(map[string]int, len(VizTypes))}
	for _, t := range VizTypes {
		n, err := c.store.CountEntries(ctx, t)
		if err != nil {
			return nil, err
		}
		stats.ByType[t] = n
		stats.TotalEntries += n
	}
	return stats, nil
}

// cacheKey is "<type>:<userID>:<k=v;...>" with params in key order, so the
// same request always maps to the same entry.
func cacheKey(vizType, userID string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + params[k]
	}
	return fmt.Sprintf("%s:%s:%s", vizType, userID, strings.Join(pairs, ";"))
}

// cached is the read-through path shared by every operation.
func cached[T any](ctx context.Context, c *CachedVisualizer, vizType, userID string, params map[string]string, build func() (*T, error)) (*T, error) {
	key := cacheKey(vizType, userID, params)

	if raw, err := c.store.Get(ctx, key); err == nil {
		var result T
		if err := json.Unmarshal(raw, &result); err == nil {
			c.logger.Debug("cache hit", zap.String("key", key))
			return &result, nil
		}
		c.logger.Warn("cache entry corrupted, rebuilding", zap.String("key", key))
	} else if err != ports.ErrCacheMiss {
		c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}

	result, err := build()
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(result); err == nil {
		if err := c.store.Set(ctx, key, raw, c.ttl); err != nil {
			c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return result, nil
}
