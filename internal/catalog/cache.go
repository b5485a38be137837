package catalog

import (
	"context"
	"errors"
	"time"

	"sentence-analyzer/internal/common/database"
	"sentence-analyzer/internal/common/logger"
	"sentence-analyzer/internal/models"
)

const cacheKeyPrefix = "catalog:"

// CachedSource keeps each identity's catalog in Redis for ttl. Cache failures
// are logged and fall through to the wrapped source; empty catalogs are never
// cached.
type CachedSource struct {
	next   Source
	redis  *database.RedisClient
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedSource(next Source, redis *database.RedisClient, ttl time.Duration, log logger.Logger) *CachedSource {
	return &CachedSource{
		next:   next,
		redis:  redis,
		ttl:    ttl,
		logger: log,
	}
}

// Close closes the wrapped source. The Redis client belongs to the caller.
func (s *CachedSource) Close() error {
	return Close(s.next)
}

func (s *CachedSource) Name() string {
	return "cached-" + s.next.Name()
}

// CacheKey returns the Redis key holding identity's catalog.
func CacheKey(identity string) string {
	return cacheKeyPrefix + identity
}

func (s *CachedSource) Load(ctx context.Context, identity string) ([]models.Endpoint, error) {
	key := CacheKey(identity)

	var cached []models.Endpoint
	err := s.redis.GetJSON(ctx, key, &cached)
	switch {
	case err == nil && len(cached) > 0:
		observe("redis", "hit")
		return cached, nil
	case err == nil, errors.Is(err, database.ErrCacheMiss):
		observe("redis", "miss")
	default:
		observe("redis", "error")
		s.logger.Warn("catalog cache read failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}

	endpoints, err := s.next.Load(ctx, identity)
	if err != nil || len(endpoints) == 0 {
		return endpoints, err
	}

	if err := s.redis.SetJSON(ctx, key, endpoints, s.ttl); err != nil {
		s.logger.Warn("catalog cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
	return endpoints, nil
}

// Invalidate drops the cached catalog of identity.
func (s *CachedSource) Invalidate(ctx context.Context, identity string) error {
	return s.redis.Del(ctx, CacheKey(identity))
}
