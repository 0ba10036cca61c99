package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/property-locator/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// slidingWindowScript - атомарная проверка окна: удалить устаревшие отметки,
// посчитать оставшиеся и добавить новую, только если квота не исчерпана.
// Возвращает {1, 0} при допуске и {0, retry_after_ms} при отказе.
var slidingWindowScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)
local count = redis.call('ZCARD', key)
if count < limit then
	redis.call('ZADD', key, now, ARGV[4])
	redis.call('PEXPIRE', key, window)
	return {1, 0}
end

local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
return {0, tonumber(oldest[2]) + window - now}
`)

type rateLimiter struct {
	client *redis.Client
	logger *zap.Logger
	limit  int
	window time.Duration
	now    func() time.Time
}

// NewRateLimiter создает распределенный лимитер со скользящим окном на Redis ZSET.
// Один ключ ratelimit:<client> хранит отметки времени допущенных запросов.
func NewRateLimiter(r *Redis, limit int, window time.Duration) repository.RateLimiter {
	return &rateLimiter{
		client: r.Client(),
		logger: r.logger,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

func (l *rateLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	nowMs := l.now().UnixMilli()

	res, err := slidingWindowScript.Run(ctx, l.client,
		[]string{"ratelimit:" + key},
		nowMs, l.window.Milliseconds(), l.limit, uuid.NewString(),
	).Int64Slice()
	if err != nil {
		l.logger.Error("Rate limit check failed", zap.String("key", key), zap.Error(err))
		return false, 0, fmt.Errorf("rate limit check: %w", err)
	}
	if len(res) != 2 {
		return false, 0, fmt.Errorf("rate limit check: unexpected reply %v", res)
	}

	if res[0] == 1 {
		return true, 0, nil
	}
	return false, time.Duration(res[1]) * time.Millisecond, nil
}
