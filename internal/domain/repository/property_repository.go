package repository

import (
	"context"

	"github.com/property-locator/internal/domain"
)

// PropertyRepository определяет методы хранилища справочника объектов
type PropertyRepository interface {
	// ListAll возвращает все объекты в порядке добавления
	ListAll(ctx context.Context) ([]domain.Property, error)

	// ListByCity возвращает объекты города (без учета регистра)
	ListByCity(ctx context.Context, city string) ([]domain.Property, error)

	// Count возвращает количество объектов
	Count(ctx context.Context) (int, error)

	// InsertBatch добавляет объекты одной транзакцией
	InsertBatch(ctx context.Context, properties []domain.Property) error
}
