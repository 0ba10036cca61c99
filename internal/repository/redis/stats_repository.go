package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/property-locator/internal/domain"
	"github.com/property-locator/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	totalField     = "total"
	updatedAtField = "updated_at"
)

type statsRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewStatsRepository создает хранилище агрегированной статистики разрешения запросов.
// Счетчики лежат в хеше stats:resolution, нераспознанные запросы - в ZSET stats:unrecognized.
func NewStatsRepository(client *redis.Client, logger *zap.Logger) repository.StatsRepository {
	return &statsRepository{
		client: client,
		logger: logger,
	}
}

// RecordResolution атомарно увеличивает счетчики для одного события
func (r *statsRepository) RecordResolution(ctx context.Context, event domain.ResolutionEvent) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, domain.StatsResolutionKey, totalField, 1)
		pipe.HIncrBy(ctx, domain.StatsResolutionKey, string(event.MatchedType), 1)
		pipe.HSet(ctx, domain.StatsResolutionKey, updatedAtField, event.ResolvedAt.UTC().Format(time.RFC3339))
		if event.MatchedType == domain.MatchedTypeUnrecognized && event.Query != "" {
			pipe.ZIncrBy(ctx, domain.StatsUnrecognizedKey, 1, event.Query)
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to record resolution",
			zap.String("event_id", event.ID.String()),
			zap.String("matched_type", string(event.MatchedType)),
			zap.Error(err))
		return fmt.Errorf("record resolution: %w", err)
	}

	return nil
}

// GetResolutionStats читает счетчики и topN самых частых нераспознанных запросов
func (r *statsRepository) GetResolutionStats(ctx context.Context, topN int) (*domain.ResolutionStats, error) {
	fields, err := r.client.HGetAll(ctx, domain.StatsResolutionKey).Result()
	if err != nil {
		r.logger.Error("Failed to read resolution counters", zap.Error(err))
		return nil, fmt.Errorf("read resolution counters: %w", err)
	}

	stats := &domain.ResolutionStats{
		ByMatchedType:   make(map[domain.MatchedType]int64, len(domain.AllMatchedTypes)),
		TopUnrecognized: make([]domain.QueryCount, 0),
	}
	for _, t := range domain.AllMatchedTypes {
		stats.ByMatchedType[t] = 0
	}

	for field, value := range fields {
		switch field {
		case totalField:
			stats.Total, _ = strconv.ParseInt(value, 10, 64)
		case updatedAtField:
			stats.UpdatedAt, _ = time.Parse(time.RFC3339, value)
		default:
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				r.logger.Warn("Skipping malformed counter",
					zap.String("field", field),
					zap.String("value", value))
				continue
			}
			stats.ByMatchedType[domain.MatchedType(field)] = n
		}
	}

	if topN > 0 {
		top, err := r.client.ZRevRangeWithScores(ctx, domain.StatsUnrecognizedKey, 0, int64(topN-1)).Result()
		if err != nil {
			r.logger.Error("Failed to read unrecognized queries", zap.Error(err))
			return nil, fmt.Errorf("read unrecognized queries: %w", err)
		}
		for _, z := range top {
			query, _ := z.Member.(string)
			stats.TopUnrecognized = append(stats.TopUnrecognized, domain.QueryCount{
				Query: query,
				Count: int64(z.Score),
			})
		}
	}

	return stats, nil
}
