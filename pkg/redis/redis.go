package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/luizndev/unime-pdr/config"
)

// Client wraps the Redis connection. It backs the MX lookup cache, the
// login rate limiter and the token blacklist; all callers must tolerate
// a nil *Client and degrade gracefully.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient connects to Redis and pings it.
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("conectando ao Redis: %w", err)
	}

	logger.Info("Redis conectado", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── MX lookup cache ──

const mxCachePrefix = "mx:domain:"

// GetMXResult returns the cached MX lookup verdict for a domain.
// ok is false on a cache miss or Redis error.
func (c *Client) GetMXResult(ctx context.Context, domain string) (value string, ok bool) {
	v, err := c.rdb.Get(ctx, mxCachePrefix+domain).Result()
	if err != nil {
		return "", false
	}
	return v, true
}

// SetMXResult caches an MX lookup verdict with the given TTL.
func (c *Client) SetMXResult(ctx context.Context, domain, value string, ttl time.Duration) error {
	return c.rdb.Set(ctx, mxCachePrefix+domain, value, ttl).Err()
}

// ── rate limiting ──

// CheckRateLimit implements a fixed-window counter. Returns false when the
// window already holds limit requests.
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return n <= int64(limit), nil
}

// ── token blacklist ──

const blacklistPrefix = "token:blacklist:"

// BlacklistToken stores a JWT ID until the token would expire anyway.
func (c *Client) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // already expired
	}
	return c.rdb.Set(ctx, blacklistPrefix+jti, "1", ttl).Err()
}

// IsBlacklisted reports whether a JWT ID was revoked.
func (c *Client) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := c.rdb.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}
