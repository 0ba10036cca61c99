package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/property-locator/internal/domain"
	"github.com/property-locator/internal/domain/repository"
)

// CatalogUseCase - загрузка справочника объектов и выдача его содержимого
type CatalogUseCase struct {
	propertyRepo repository.PropertyRepository
	seed         []domain.Property
	catalog      *domain.Catalog
	logger       *zap.Logger
}

// NewCatalogUseCase создает use case; seed записывается в пустое хранилище при Load
func NewCatalogUseCase(
	propertyRepo repository.PropertyRepository,
	seed []domain.Property,
	logger *zap.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		propertyRepo: propertyRepo,
		seed:         seed,
		logger:       logger,
	}
}

// Load читает хранилище в неизменяемый справочник. Вызывается один раз при старте,
// до начала обработки запросов.
func (uc *CatalogUseCase) Load(ctx context.Context) (*domain.Catalog, error) {
	count, err := uc.propertyRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count properties: %w", err)
	}

	if count == 0 && len(uc.seed) > 0 {
		uc.logger.Info("Property store is empty, seeding", zap.Int("count", len(uc.seed)))
		if err := uc.propertyRepo.InsertBatch(ctx, uc.seed); err != nil {
			return nil, fmt.Errorf("seed properties: %w", err)
		}
	}

	properties, err := uc.propertyRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load properties: %w", err)
	}

	catalog, err := domain.NewCatalog(properties)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	uc.catalog = catalog
	uc.logger.Info("Catalog loaded",
		zap.Int("properties", catalog.Len()),
		zap.Int("cities", len(catalog.Cities())))
	return catalog, nil
}

// List возвращает объекты справочника, при непустом city - только этого города
func (uc *CatalogUseCase) List(city string) []domain.Property {
	if uc.catalog == nil {
		return []domain.Property{}
	}
	if city == "" {
		return uc.catalog.All()
	}
	return uc.catalog.ByCity(city)
}

// Size - количество объектов в загруженном справочнике
func (uc *CatalogUseCase) Size() int {
	if uc.catalog == nil {
		return 0
	}
	return uc.catalog.Len()
}
