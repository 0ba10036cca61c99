package repository

import (
	"context"

	"github.com/property-locator/internal/domain"
)

// GeocoderRepository - внешний сервис геокодирования.
// Возвращает domain.ErrLocationNotFound, если место не найдено или ответ некорректен;
// прочие ошибки считаются временными.
type GeocoderRepository interface {
	Geocode(ctx context.Context, query string) (*domain.Coordinates, error)
}
