package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/property-locator/internal/domain"
	"github.com/property-locator/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const statsKey = "stats:current"

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

// get возвращает nil без ошибки при промахе
func (r *cacheRepository) get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

// geocodeKey - ключ результата геокодирования; регистр и пробелы не различаются
func geocodeKey(place string) string {
	return "geocode:" + strings.ToLower(strings.TrimSpace(place))
}

// GetCoordinates получает закешированный результат геокодирования
func (r *cacheRepository) GetCoordinates(ctx context.Context, place string) (*domain.Coordinates, error) {
	data, err := r.get(ctx, geocodeKey(place))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var coords domain.Coordinates
	if err := json.Unmarshal(data, &coords); err != nil {
		r.logger.Error("Failed to unmarshal coordinates from cache",
			zap.String("place", place),
			zap.Error(err))
		return nil, fmt.Errorf("unmarshal coordinates: %w", err)
	}

	return &coords, nil
}

// SetCoordinates сохраняет результат геокодирования
func (r *cacheRepository) SetCoordinates(ctx context.Context, place string, coords domain.Coordinates, ttl time.Duration) error {
	data, err := json.Marshal(coords)
	if err != nil {
		return fmt.Errorf("marshal coordinates: %w", err)
	}

	return r.set(ctx, geocodeKey(place), data, ttl)
}

// GetStats получает статистику из кеша
func (r *cacheRepository) GetStats(ctx context.Context) (*domain.ResolutionStats, error) {
	data, err := r.get(ctx, statsKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var stats domain.ResolutionStats
	if err := json.Unmarshal(data, &stats); err != nil {
		r.logger.Error("Failed to unmarshal stats from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal stats: %w", err)
	}

	return &stats, nil
}

// SetStats сохраняет статистику в кеше
func (r *cacheRepository) SetStats(ctx context.Context, stats *domain.ResolutionStats, ttl time.Duration) error {
	data, err := json.Marshal(stats)
	if err != nil {
		r.logger.Error("Failed to marshal stats", zap.Error(err))
		return fmt.Errorf("marshal stats: %w", err)
	}

	return r.set(ctx, statsKey, data, ttl)
}
