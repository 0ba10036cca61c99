package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/property-locator/internal/domain"
	"github.com/property-locator/internal/domain/repository"
)

const unrecognizedMessage = "Could not recognize or correct the input location."

// ResolveUseCase - разрешение текстового запроса в список ближайших объектов.
// Исходы проверяются строго по приоритету: unrecognized, direct_match,
// location_not_found, proximity_match, no_match.
type ResolveUseCase struct {
	catalog    *domain.Catalog
	corrector  *SpellingCorrector
	lookup     *PropertyLookup
	geocoder   *GeocoderAdapter
	proximity  *ProximitySearch
	streamRepo repository.StreamRepository
	logger     *zap.Logger

	// geocodeUnrecognized - геокодировать запросы, не подтвержденные словарем или подсказками
	geocodeUnrecognized bool
	now                 func() time.Time
}

// NewResolveUseCase создает use case. streamRepo может быть nil - события аналитики
// тогда не публикуются.
func NewResolveUseCase(
	catalog *domain.Catalog,
	corrector *SpellingCorrector,
	geocoder *GeocoderAdapter,
	proximity *ProximitySearch,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
	geocodeUnrecognized bool,
) *ResolveUseCase {
	return &ResolveUseCase{
		catalog:             catalog,
		corrector:           corrector,
		lookup:              NewPropertyLookup(catalog),
		geocoder:            geocoder,
		proximity:           proximity,
		streamRepo:          streamRepo,
		logger:              logger,
		geocodeUnrecognized: geocodeUnrecognized,
		now:                 time.Now,
	}
}

// Resolve всегда возвращает результат: сбои внешних сервисов превращаются
// в unrecognized или location_not_found.
func (uc *ResolveUseCase) Resolve(ctx context.Context, query string) *domain.MatchResult {
	corrected, err := uc.corrector.Correct(ctx, query)
	result := uc.resolve(ctx, corrected, err)

	uc.logger.Info("Query resolved",
		zap.String("query", corrected.Normalized),
		zap.String("corrected", corrected.Name),
		zap.String("source", string(corrected.Source)),
		zap.String("matched_type", string(result.Type)),
		zap.Int("properties", len(result.Properties)))

	uc.publish(ctx, corrected.Normalized, result)
	return result
}

func (uc *ResolveUseCase) resolve(ctx context.Context, corrected domain.CorrectedLocation, correctErr error) *domain.MatchResult {
	// 1. Нераспознанный запрос
	if correctErr != nil {
		if !errors.Is(correctErr, domain.ErrInvalidQuery) {
			uc.logger.Warn("Spelling correction failed", zap.Error(correctErr))
		}
		return unrecognized(corrected)
	}
	if !corrected.Recognized() && !uc.geocodeUnrecognized {
		return unrecognized(corrected)
	}

	// 2. Прямое совпадение - геокодер не вызывается
	if direct := uc.lookup.FindDirect(corrected); len(direct) > 0 {
		properties := make([]domain.NearbyProperty, 0, len(direct))
		for _, p := range direct {
			properties = append(properties, domain.NearbyProperty{Property: p, DistanceKm: 0})
		}
		return &domain.MatchResult{
			Type:        domain.MatchedTypeDirectMatch,
			MatchedCity: corrected.Name,
			Properties:  properties,
			Source:      corrected.Source,
		}
	}

	// 3. Геокодирование: исправленное название, затем исходный запрос
	attempted := candidateNames(corrected)
	var (
		origin domain.Coordinates
		found  bool
	)
	for _, name := range attempted {
		coords, err := uc.geocoder.Geocode(ctx, name)
		if err != nil {
			uc.logger.Info("Location not geocoded", zap.String("name", name), zap.Error(err))
			continue
		}
		origin, found = coords, true
		break
	}
	if !found {
		return &domain.MatchResult{
			Type:        domain.MatchedTypeLocationNotFound,
			MatchedCity: corrected.Name,
			Message:     fmt.Sprintf("Could not geolocate '%s'.", corrected.Name),
			Attempted:   attempted,
			Source:      corrected.Source,
		}
	}

	// 4-5. Поиск в радиусе
	nearby := uc.proximity.Nearby(origin, uc.catalog)
	if len(nearby) > 0 {
		return &domain.MatchResult{
			Type:        domain.MatchedTypeProximityMatch,
			MatchedCity: corrected.Name,
			Properties:  nearby,
			Attempted:   attempted,
			Source:      corrected.Source,
		}
	}

	return &domain.MatchResult{
		Type:        domain.MatchedTypeNoMatch,
		MatchedCity: corrected.Name,
		Properties:  []domain.NearbyProperty{},
		Message:     fmt.Sprintf("No properties found within %g km radius.", uc.proximity.RadiusKm()),
		Attempted:   attempted,
		Source:      corrected.Source,
	}
}

func unrecognized(corrected domain.CorrectedLocation) *domain.MatchResult {
	return &domain.MatchResult{
		Type:    domain.MatchedTypeUnrecognized,
		Message: unrecognizedMessage,
		Source:  corrected.Source,
	}
}

// candidateNames - названия для геокодера без повторов
func candidateNames(corrected domain.CorrectedLocation) []string {
	names := []string{corrected.Name}
	if corrected.Normalized != "" && corrected.Normalized != corrected.Name {
		names = append(names, corrected.Normalized)
	}
	return names
}

// publish отправляет событие аналитики; ошибка публикации на ответ не влияет
func (uc *ResolveUseCase) publish(ctx context.Context, query string, result *domain.MatchResult) {
	if uc.streamRepo == nil {
		return
	}

	event := domain.NewResolutionEvent(query, result, uc.now())
	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamResolutionEvents, event); err != nil {
		uc.logger.Warn("Failed to publish resolution event",
			zap.String("event_id", event.ID.String()),
			zap.Error(err))
	}
}
