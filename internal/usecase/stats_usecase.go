package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/property-locator/internal/domain"
	"github.com/property-locator/internal/domain/repository"
	"go.uber.org/zap"
)

// StatsUseCase обрабатывает бизнес-логику для статистики
type StatsUseCase struct {
	statsRepo repository.StatsRepository
	cacheRepo repository.CacheRepository
	catalog   *CatalogUseCase
	topN      int
	cacheTTL  time.Duration
	logger    *zap.Logger
	now       func() time.Time
}

// NewStatsUseCase создает новый экземпляр StatsUseCase
func NewStatsUseCase(
	statsRepo repository.StatsRepository,
	cacheRepo repository.CacheRepository,
	catalog *CatalogUseCase,
	topN int,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *StatsUseCase {
	return &StatsUseCase{
		statsRepo: statsRepo,
		cacheRepo: cacheRepo,
		catalog:   catalog,
		topN:      topN,
		cacheTTL:  cacheTTL,
		logger:    logger,
		now:       time.Now,
	}
}

// GetStatistics возвращает статистику, используя кеш когда возможно
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.ResolutionStats, error) {
	// 1. Проверяем кеш
	cached, err := uc.cacheRepo.GetStats(ctx)
	if err == nil && cached != nil {
		uc.logger.Debug("Statistics fetched from cache")
		return cached, nil
	}

	if err != nil {
		uc.logger.Warn("Failed to get stats from cache", zap.Error(err))
	}

	// 2. Читаем счетчики
	return uc.RefreshStatistics(ctx)
}

// RefreshStatistics принудительно перечитывает счетчики и обновляет кеш
func (uc *StatsUseCase) RefreshStatistics(ctx context.Context) (*domain.ResolutionStats, error) {
	stats, err := uc.statsRepo.GetResolutionStats(ctx, uc.topN)
	if err != nil {
		return nil, fmt.Errorf("get resolution stats: %w", err)
	}

	if uc.catalog != nil {
		stats.CatalogProperties = uc.catalog.Size()
	}
	if stats.UpdatedAt.IsZero() {
		stats.UpdatedAt = uc.now().UTC()
	}

	// 3. Кешируем; ошибку не возвращаем, т.к. данные уже получены
	if err := uc.cacheRepo.SetStats(ctx, stats, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache stats", zap.Error(err))
	} else {
		uc.logger.Debug("Statistics cached successfully")
	}

	return stats, nil
}
