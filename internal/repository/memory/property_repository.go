package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/property-locator/internal/domain"
	"github.com/property-locator/internal/domain/repository"
)

// propertyRepository - in-memory хранилище справочника для запуска без PostgreSQL
type propertyRepository struct {
	mu         sync.RWMutex
	properties []domain.Property
	nextID     int64
}

// NewPropertyRepository создает пустое in-memory хранилище
func NewPropertyRepository() repository.PropertyRepository {
	return &propertyRepository{nextID: 1}
}

func (r *propertyRepository) ListAll(ctx context.Context) ([]domain.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Property, len(r.properties))
	copy(out, r.properties)
	return out, nil
}

func (r *propertyRepository) ListByCity(ctx context.Context, city string) ([]domain.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Property, 0)
	for _, p := range r.properties {
		if strings.EqualFold(strings.TrimSpace(p.City), strings.TrimSpace(city)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *propertyRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.properties), nil
}

func (r *propertyRepository) InsertBatch(ctx context.Context, properties []domain.Property) error {
	for _, p := range properties {
		if err := p.Validate(); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range properties {
		p.ID = r.nextID
		r.nextID++
		r.properties = append(r.properties, p)
	}
	return nil
}
