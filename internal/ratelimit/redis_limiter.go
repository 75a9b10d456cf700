package ratelimit

import (
	"context"
	"time"

	"github.com/redis/rueidis"
)

// RedisLimiter is a fixed-window counter shared across instances through
// redis: INCR on the window key, EXPIRE on first increment.
type RedisLimiter struct {
	client rueidis.Client
	limit  int
	window time.Duration
}

func NewRedisLimiter(client rueidis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowKey := "ratelimit:" + key

	count, err := l.client.Do(
		ctx,
		l.client.B().Incr().Key(windowKey).Build(),
	).AsInt64()
	if err != nil {
		return false, err
	}

	if count == 1 {
		if err := l.client.Do(
			ctx,
			l.client.B().Expire().Key(windowKey).Seconds(int64(l.window/time.Second)).Build(),
		).Error(); err != nil {
			return false, err
		}
	}

	return count <= int64(l.limit), nil
}
