package httpserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"taskboard/config"
)

// RateLimiter enforces a sliding-window limit per client IP on the auth
// endpoints, backed by Redis sorted sets. With no Redis client it is a
// pass-through.
type RateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	logger *zap.Logger
}

func NewRateLimiter(client *redis.Client, cfg config.RateLimitConfig, logger *zap.Logger) *RateLimiter {
	limit := cfg.Requests
	if limit <= 0 {
		limit = 20
	}
	window := time.Duration(cfg.WindowSeconds) * time.Second
	if window <= 0 {
		window = time.Minute
	}
	if !cfg.Enabled {
		client = nil
	}
	return &RateLimiter{client: client, limit: limit, window: window, logger: logger}
}

// Middleware rejects a request with 429 once the caller exhausts the
// window. Redis failures fail open: an unavailable limiter never locks
// users out of login.
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l.client == nil {
			c.Next()
			return
		}

		key := "ratelimit:auth:" + c.ClientIP()
		now := time.Now()
		windowStart := now.Add(-l.window)

		pipe := l.client.TxPipeline()
		pipe.ZRemRangeByScore(c.Request.Context(), key, "-inf", fmt.Sprintf("%d", windowStart.UnixMilli()))
		count := pipe.ZCard(c.Request.Context(), key)
		pipe.ZAdd(c.Request.Context(), key, redis.Z{
			Score:  float64(now.UnixMilli()),
			Member: now.UnixNano(),
		})
		pipe.Expire(c.Request.Context(), key, l.window)

		if _, err := pipe.Exec(c.Request.Context()); err != nil {
			l.logger.Warn("Rate limiter unavailable, allowing request", zap.Error(err))
			c.Next()
			return
		}

		if int(count.Val()) >= l.limit {
			c.JSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests, try again later"})
			c.Abort()
			return
		}

		c.Next()
	}
}
