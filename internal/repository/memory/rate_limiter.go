package memory

import (
	"context"
	"sync"
	"time"

	"github.com/property-locator/internal/domain/repository"
)

// rateLimiter - скользящее окно в памяти процесса: для каждого клиента хранятся
// времена принятых запросов за последнее окно.
type rateLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	now    func() time.Time
	log    map[string][]time.Time
}

// NewRateLimiter создает limiter на limit запросов за window для одного клиента
func NewRateLimiter(limit int, window time.Duration) repository.RateLimiter {
	return newRateLimiter(limit, window, time.Now)
}

func newRateLimiter(limit int, window time.Duration, now func() time.Time) *rateLimiter {
	return &rateLimiter{
		limit:  limit,
		window: window,
		now:    now,
		log:    make(map[string][]time.Time),
	}
}

func (l *rateLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	hits := l.log[key]
	i := 0
	for i < len(hits) && !hits[i].After(cutoff) {
		i++
	}
	hits = hits[i:]

	if len(hits) >= l.limit {
		l.log[key] = hits
		return false, hits[0].Sub(cutoff), nil
	}

	l.log[key] = append(hits, now)

	// Периодически выбрасываем клиентов без запросов в текущем окне
	if len(l.log) > 1024 {
		for k, v := range l.log {
			if len(v) == 0 || !v[len(v)-1].After(cutoff) {
				delete(l.log, k)
			}
		}
	}

	return true, 0, nil
}
