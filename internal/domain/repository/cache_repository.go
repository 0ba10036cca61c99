package repository

import (
	"context"
	"time"

	"github.com/property-locator/internal/domain"
)

// CacheRepository - кеш результатов геокодирования и агрегированной статистики
type CacheRepository interface {
	// GetCoordinates получает закешированный результат геокодирования
	GetCoordinates(ctx context.Context, place string) (*domain.Coordinates, error)

	// SetCoordinates сохраняет результат геокодирования
	SetCoordinates(ctx context.Context, place string, coords domain.Coordinates, ttl time.Duration) error

	// GetStats получает статистику из кеша
	GetStats(ctx context.Context) (*domain.ResolutionStats, error)

	// SetStats сохраняет статистику в кеше
	SetStats(ctx context.Context, stats *domain.ResolutionStats, ttl time.Duration) error
}
