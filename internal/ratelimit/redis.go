package ratelimit

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter counts requests in a fixed Redis window, so limits hold
// across processes.
type RedisLimiter struct {
	rdb    *redis.Client
	window Window
}

func NewRedis(addr string, window Window) *RedisLimiter {
	return &RedisLimiter{
		rdb:    redis.NewClient(&redis.Options{Addr: addr}),
		window: window,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := "ratelimit:" + key

	count, err := l.rdb.Incr(ctx, k).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		l.rdb.Expire(ctx, k, l.window.Period)
	}
	return count <= int64(l.window.Limit), nil
}
