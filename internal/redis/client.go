package redis

import (
	"github.com/redis/go-redis/v9"

	"taskboard/config"
)

// NewClient builds the redis client backing the auth rate limiter.
// Returns nil when no address is configured; callers treat that as
// "rate limiting disabled".
func NewClient(cfg config.RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
