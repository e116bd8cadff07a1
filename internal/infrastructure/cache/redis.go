// Package cache wraps Redis for the two concerns the API layer has: caching
// the latest scoring run per assessment and fixed-window request rate
// limiting.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"siteguard-engine/internal/config"
	"siteguard-engine/internal/domain/models"
	"siteguard-engine/pkg/logger"
)

// ErrCacheMiss is returned when the key is not cached
var ErrCacheMiss = errors.New("cache miss")

// RedisCache wraps the Redis client with typed operations
type RedisCache struct {
	client    *redis.Client
	keyPrefix string
	logger    *logger.Logger
}

// NewRedis creates a new Redis client
func NewRedis(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) (*RedisCache, error) {
	log = log.WithComponent("redis")
	log.Info().Str("host", cfg.Host).Int("port", cfg.Port).Msg("connecting to Redis")

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	log.Info().Msg("connected to Redis successfully")

	return &RedisCache{
		client:    client,
		keyPrefix: cfg.KeyPrefix,
		logger:    log,
	}, nil
}

// Client returns the underlying Redis client
func (c *RedisCache) Client() *redis.Client {
	return c.client
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	c.logger.Info().Msg("closing Redis connection")
	return c.client.Close()
}

// key prepends the namespace prefix to a key
func (c *RedisCache) key(k string) string {
	return c.keyPrefix + k
}

func runKey(assessmentID uuid.UUID) string {
	return "run:latest:" + assessmentID.String()
}

// GetLatestRun returns the cached latest scoring run for an assessment
func (c *RedisCache) GetLatestRun(ctx context.Context, assessmentID uuid.UUID) (*models.ScoringRun, error) {
	data, err := c.client.Get(ctx, c.key(runKey(assessmentID))).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached run: %w", err)
	}

	var run models.ScoringRun
	if err := json.Unmarshal([]byte(data), &run); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached run: %w", err)
	}
	return &run, nil
}

// SetLatestRun caches the latest scoring run for an assessment
func (c *RedisCache) SetLatestRun(ctx context.Context, run *models.ScoringRun, ttl time.Duration) error {
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}
	return c.client.Set(ctx, c.key(runKey(run.AssessmentID)), data, ttl).Err()
}

// InvalidateRun drops the cached run after a regeneration or response update
func (c *RedisCache) InvalidateRun(ctx context.Context, assessmentID uuid.UUID) error {
	return c.client.Del(ctx, c.key(runKey(assessmentID))).Err()
}

// CheckRateLimit implements a fixed-window counter per client key. It returns
// whether the request is allowed, the remaining allowance and when the
// current window resets.
func (c *RedisCache) CheckRateLimit(ctx context.Context, clientKey string, limit int64, window time.Duration) (bool, int64, time.Time, error) {
	key := c.key("ratelimit:" + clientKey)

	count, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, time.Time{}, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}
	if count == 1 {
		if err := c.client.Expire(ctx, key, window).Err(); err != nil {
			return false, 0, time.Time{}, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	ttl, err := c.client.TTL(ctx, key).Result()
	if err != nil || ttl < 0 {
		ttl = window
	}
	reset := time.Now().Add(ttl)

	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}
	return count <= limit, remaining, reset, nil
}
