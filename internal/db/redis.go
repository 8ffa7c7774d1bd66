package db

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"atlas-ads/internal/config/configs"
)

// NewRedisClient creates a Redis client for the listing cache and
// verifies connectivity with a short ping.
func NewRedisClient(ctx context.Context, cfg configs.Redis) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Addr})

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctxPing).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}
