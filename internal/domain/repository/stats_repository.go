package repository

import (
	"context"

	"github.com/property-locator/internal/domain"
)

// StatsRepository интерфейс для работы со статистикой разрешения запросов
type StatsRepository interface {
	// RecordResolution учитывает одно событие разрешения
	RecordResolution(ctx context.Context, event domain.ResolutionEvent) error

	// GetResolutionStats возвращает счетчики и topN нераспознанных запросов
	GetResolutionStats(ctx context.Context, topN int) (*domain.ResolutionStats, error)
}
