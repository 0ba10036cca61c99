package utils

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/property-locator/internal/pkg/errors"
)

// requestIDHeader выставляется middleware.Logger до вызова обработчиков
const requestIDHeader = "X-Request-ID"

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error     *errors.AppError `json:"error"`
	RequestID string           `json:"request_id,omitempty"`
}

type Meta struct {
	Total    int     `json:"total,omitempty"`
	Page     int     `json:"page,omitempty"`
	Limit    int     `json:"limit,omitempty"`
	TimeMSec float64 `json:"time_ms,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

// SendError отдает AppError с его статусом; любая другая ошибка становится 500
// без раскрытия деталей клиенту
func SendError(c *fiber.Ctx, err error) error {
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		appErr = errors.ErrInternalServer
	}

	return c.Status(appErr.StatusCode).JSON(ErrorResponse{
		Error:     appErr,
		RequestID: c.GetRespHeader(requestIDHeader),
	})
}
