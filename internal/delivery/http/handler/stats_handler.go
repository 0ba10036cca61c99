package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/property-locator/internal/pkg/errors"
	"github.com/property-locator/internal/pkg/utils"
	"github.com/property-locator/internal/usecase"
	"go.uber.org/zap"
)

// StatsHandler отдает агрегированную статистику разрешения запросов
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

// NewStatsHandler создает новый экземпляр StatsHandler
func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetStatistics godoc
// @Summary Get resolution statistics
// @Description Возвращает счетчики запросов по типам результата и самые частые нераспознанные запросы
// @Tags Statistics
// @Produce json
// @Param refresh query bool false "Перечитать счетчики в обход кеша"
// @Success 200 {object} utils.SuccessResponse{data=domain.ResolutionStats}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	ctx := c.Context()
	refresh := c.QueryBool("refresh", false)

	h.logger.Debug("Handling get statistics request", zap.Bool("refresh", refresh))

	get := h.statsUC.GetStatistics
	if refresh {
		get = h.statsUC.RefreshStatistics
	}

	stats, err := get(ctx)
	if err != nil {
		h.logger.Error("Failed to get statistics", zap.Error(err))
		return utils.SendError(c, errors.ErrCacheError)
	}

	return utils.SendSuccess(c, stats, nil)
}
