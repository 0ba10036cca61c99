package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/property-locator/internal/pkg/errors"
	"github.com/property-locator/internal/pkg/utils"
	pkgvalidator "github.com/property-locator/internal/pkg/validator"
	"github.com/property-locator/internal/usecase"
	"github.com/property-locator/internal/usecase/dto"
)

// PropertyHandler - обработчик поиска ближайших объектов и справочника
type PropertyHandler struct {
	resolveUC *usecase.ResolveUseCase
	catalogUC *usecase.CatalogUseCase
	logger    *zap.Logger
}

// NewPropertyHandler - создание нового PropertyHandler
func NewPropertyHandler(
	resolveUC *usecase.ResolveUseCase,
	catalogUC *usecase.CatalogUseCase,
	logger *zap.Logger,
) *PropertyHandler {
	return &PropertyHandler{
		resolveUC: resolveUC,
		catalogUC: catalogUC,
		logger:    logger,
	}
}

// NearestProperty godoc
// @Summary Поиск ближайших объектов по названию места
// @Description Исправляет опечатки в названии, ищет прямое совпадение с городом объекта, иначе геокодирует место и возвращает объекты в радиусе 50 км по возрастанию расстояния.
// @Tags Properties
// @Accept json
// @Produce json
// @Param request body dto.ResolveRequest true "Название места"
// @Success 200 {object} dto.ResolveResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 429 {object} utils.ErrorResponse
// @Router /nearest-property [post]
// @Router /api/v1/nearest-property [post]
func (h *PropertyHandler) NearestProperty(c *fiber.Ctx) error {
	var req dto.ResolveRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": "request body must be a JSON object with a string field 'query'",
		}))
	}

	if err := pkgvalidator.Validate(&req); err != nil {
		return utils.SendError(c, queryValidationError(err))
	}

	result := h.resolveUC.Resolve(c.Context(), req.Query)

	return c.JSON(dto.NewResolveResponse(result))
}

// ListProperties godoc
// @Summary Список объектов справочника
// @Description Возвращает объекты справочника в порядке загрузки, с необязательным фильтром по городу (без учета регистра)
// @Tags Properties
// @Produce json
// @Param city query string false "Город"
// @Success 200 {object} utils.SuccessResponse{data=dto.PropertyListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/properties [get]
func (h *PropertyHandler) ListProperties(c *fiber.Ctx) error {
	var req dto.ListPropertiesRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := pkgvalidator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"city": "must be at most 50 characters",
		}))
	}

	properties := h.catalogUC.List(req.City)

	return utils.SendSuccess(c, dto.PropertyListResponse{
		Properties: properties,
		Total:      len(properties),
	}, &utils.Meta{Total: len(properties)})
}

// queryValidationError - ошибка валидации поля query в ответ INVALID_QUERY
func queryValidationError(err error) error {
	fields := pkgvalidator.FieldErrors(err)
	tag, ok := fields["query"]
	if !ok {
		return errors.ErrInvalidQuery
	}

	reason := "must be 2-50 characters long and must not contain digits"
	if tag == "required" {
		reason = "is required"
	}
	return errors.ErrInvalidQuery.WithDetails(map[string]interface{}{
		"query": reason,
	})
}
