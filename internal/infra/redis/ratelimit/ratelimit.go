package infra_redis_ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis"
	"github.com/google/uuid"
)

// Trims the sorted set to the trailing window, then records the request only
// if there is room. Scores are unix milliseconds.
var slidingWindow = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)
if redis.call('ZCARD', key) >= limit then
	local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
	return {0, tonumber(oldest[2]) + window - now}
end

redis.call('ZADD', key, now, ARGV[4])
redis.call('PEXPIRE', key, window)
return {1, 0}
`)

// Driver is a sliding-window limiter shared by every instance that talks to
// the same Redis.
type Driver struct {
	client *redis.Client
	prefix string
	limit  int
	window time.Duration
}

func New(
	client *redis.Client,
	prefix string,
	limit int,
	window time.Duration,
) *Driver {
	return &Driver{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

func (d *Driver) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	now := time.Now().UnixMilli()

	res, err := slidingWindow.Run(
		d.client.WithContext(ctx),
		[]string{d.prefix + ":" + key},
		now, d.window.Milliseconds(), d.limit, uuid.NewString(),
	).Result()
	if err != nil {
		return false, 0, err
	}

	vals, ok := res.([]interface{})
	if !ok || len(vals) != 2 {
		return false, 0, fmt.Errorf("unexpected script reply %v", res)
	}
	allowed, _ := vals[0].(int64)
	retryMs, _ := vals[1].(int64)

	return allowed == 1, time.Duration(retryMs) * time.Millisecond, nil
}
