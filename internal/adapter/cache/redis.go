package cache

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/couchcryptid/climate-risk-service/internal/domain"
	"github.com/couchcryptid/climate-risk-service/internal/observability"
	"github.com/redis/go-redis/v9"
)

// RedisElevationProvider wraps an ElevationProvider with a Redis cache so
// multiple instances share lookups. Redis errors fall through to the inner
// provider; the cache is an optimization, never a dependency.
type RedisElevationProvider struct {
	inner   domain.ElevationProvider
	client  *redis.Client
	ttl     time.Duration
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewRedisElevationProvider creates a Redis-backed cache decorator.
func NewRedisElevationProvider(inner domain.ElevationProvider, client *redis.Client, ttl time.Duration, metrics *observability.Metrics, logger *slog.Logger) *RedisElevationProvider {
	return &RedisElevationProvider{
		inner:   inner,
		client:  client,
		ttl:     ttl,
		metrics: metrics,
		logger:  logger,
	}
}

func (c *RedisElevationProvider) FetchElevation(ctx context.Context, lat, lon float64) (float64, error) {
	key := "elevation:" + coordKey(lat, lon)

	val, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		if elevation, parseErr := strconv.ParseFloat(val, 64); parseErr == nil {
			c.metrics.ElevationCache.WithLabelValues("redis", "hit").Inc()
			return elevation, nil
		}
		c.logger.Warn("corrupt elevation cache entry", "key", key, "value", val)
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("redis get failed", "key", key, "error", err)
	}
	c.metrics.ElevationCache.WithLabelValues("redis", "miss").Inc()

	elevation, err := c.inner.FetchElevation(ctx, lat, lon)
	if err != nil {
		return 0, err
	}

	formatted := strconv.FormatFloat(elevation, 'f', -1, 64)
	if err := c.client.Set(ctx, key, formatted, c.ttl).Err(); err != nil {
		c.logger.Warn("redis set failed", "key", key, "error", err)
	}
	return elevation, nil
}
