package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/property-locator/internal/domain"
	"github.com/property-locator/internal/domain/repository"
	"github.com/property-locator/internal/pkg/retry"
)

// GeocoderAdapter - геокодирование названия места с повторами и кешем.
// Любой сбой после исчерпания попыток сводится к domain.ErrLocationNotFound.
type GeocoderAdapter struct {
	geocoder  repository.GeocoderRepository
	cacheRepo repository.CacheRepository
	policy    retry.Policy
	country   string
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// NewGeocoderAdapter создает адаптер. cacheRepo может быть nil.
func NewGeocoderAdapter(
	geocoder repository.GeocoderRepository,
	cacheRepo repository.CacheRepository,
	policy retry.Policy,
	country string,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *GeocoderAdapter {
	return &GeocoderAdapter{
		geocoder:  geocoder,
		cacheRepo: cacheRepo,
		policy:    policy,
		country:   country,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// Geocode возвращает координаты места, уточняя запрос страной ("goa, India")
func (a *GeocoderAdapter) Geocode(ctx context.Context, placeName string) (domain.Coordinates, error) {
	query := placeName
	if a.country != "" {
		query = placeName + ", " + a.country
	}

	if cached := a.fromCache(ctx, query); cached != nil {
		return *cached, nil
	}

	var coords domain.Coordinates
	err := a.policy.Do(ctx, func(ctx context.Context, attempt int) error {
		result, err := a.geocoder.Geocode(ctx, query)
		if err != nil {
			if errors.Is(err, domain.ErrLocationNotFound) {
				return retry.Permanent(err)
			}
			a.logger.Warn("Geocoding attempt failed",
				zap.String("query", query),
				zap.Int("attempt", attempt),
				zap.Error(err))
			return err
		}
		coords = *result
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrLocationNotFound) {
			return domain.Coordinates{}, err
		}
		return domain.Coordinates{}, fmt.Errorf("%w: %s: %v", domain.ErrLocationNotFound, query, err)
	}

	a.toCache(ctx, query, coords)
	return coords, nil
}

func (a *GeocoderAdapter) fromCache(ctx context.Context, query string) *domain.Coordinates {
	if a.cacheRepo == nil {
		return nil
	}

	cached, err := a.cacheRepo.GetCoordinates(ctx, query)
	if err != nil {
		a.logger.Warn("Failed to get coordinates from cache", zap.String("query", query), zap.Error(err))
		return nil
	}
	if cached != nil && cached.Valid() {
		a.logger.Debug("Coordinates fetched from cache", zap.String("query", query))
		return cached
	}
	return nil
}

func (a *GeocoderAdapter) toCache(ctx context.Context, query string, coords domain.Coordinates) {
	if a.cacheRepo == nil {
		return
	}
	if err := a.cacheRepo.SetCoordinates(ctx, query, coords, a.cacheTTL); err != nil {
		a.logger.Warn("Failed to cache coordinates", zap.String("query", query), zap.Error(err))
	}
}
