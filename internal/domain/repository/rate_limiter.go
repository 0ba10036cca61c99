package repository

import (
	"context"
	"time"
)

// RateLimiter - ограничение частоты запросов в скользящем окне.
// Allow регистрирует запрос клиента key и сообщает, укладывается ли он в квоту;
// при отказе возвращает время до освобождения слота.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, time.Duration, error)
}
