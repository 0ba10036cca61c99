package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/property-locator/internal/domain"
	"github.com/property-locator/internal/domain/repository"
	"github.com/property-locator/internal/worker"
)

const (
	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
	errorSleep      = time.Second            // пауза при ошибке чтения
)

// ResolutionStatsWorker агрегирует события разрешения запросов из
// stream:resolution:events в счетчики статистики
type ResolutionStatsWorker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	statsRepo  repository.StatsRepository
	batchSize  int
}

// NewResolutionStatsWorker создает новый ResolutionStatsWorker
func NewResolutionStatsWorker(
	streamRepo repository.StreamRepository,
	statsRepo repository.StatsRepository,
	consumerGroup string,
	batchSize int,
	logger *zap.Logger,
) *ResolutionStatsWorker {
	if batchSize <= 0 {
		batchSize = 50
	}

	return &ResolutionStatsWorker{
		BaseWorker: worker.NewBaseWorker("resolution-stats", consumerGroup, logger),
		streamRepo: streamRepo,
		statsRepo:  statsRepo,
		batchSize:  batchSize,
	}
}

// Start запускает воркер и блокируется до Stop или отмены ctx
func (w *ResolutionStatsWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting ResolutionStatsWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamResolutionEvents, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.ProcessBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				w.pause(ctx, errorSleep)
				continue
			}

			if processed == 0 {
				w.pause(ctx, emptyQueueSleep)
			}
		}
	}
}

// ProcessBatch читает пачку событий и учитывает их в статистике.
// Битые сообщения подтверждаются и пропускаются; событие, которое не удалось
// записать, не подтверждается и остается в pending группы.
// Возвращает количество прочитанных сообщений.
func (w *ResolutionStatsWorker) ProcessBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamResolutionEvents,
		w.ConsumerGroup(),
		w.ConsumerName(),
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	acked := make([]string, 0, len(messages))
	failed := 0

	for _, msg := range messages {
		var event domain.ResolutionEvent
		if err := json.Unmarshal([]byte(msg.Data), &event); err != nil || event.MatchedType == "" {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK битое сообщение чтобы не застревало
			acked = append(acked, msg.ID)
			continue
		}

		if err := w.statsRepo.RecordResolution(ctx, event); err != nil {
			logger.Error("Failed to record resolution",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			failed++
			continue
		}
		acked = append(acked, msg.ID)
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamResolutionEvents, w.ConsumerGroup(), acked); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
		// Неподтвержденные сообщения остаются в pending группы
	}

	logger.Debug("Batch processed",
		zap.Int("messages", len(messages)),
		zap.Int("acked", len(acked)),
		zap.Int("failed", failed))

	return len(messages), nil
}

func (w *ResolutionStatsWorker) pause(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-w.StopChan():
	case <-ctx.Done():
	}
}
