package postgres

import (
	"context"
	"fmt"

	"github.com/property-locator/internal/domain"
	"github.com/property-locator/internal/domain/repository"
	"go.uber.org/zap"
)

type propertyRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewPropertyRepository создает репозиторий справочника объектов
func NewPropertyRepository(db *DB) repository.PropertyRepository {
	return &propertyRepository{
		db:     db,
		logger: db.logger,
	}
}

// ListAll возвращает все объекты в порядке добавления
func (r *propertyRepository) ListAll(ctx context.Context) ([]domain.Property, error) {
	query := `
		SELECT id, name, city, lat, lon
		FROM properties
		ORDER BY id
	`

	properties := make([]domain.Property, 0)
	if err := r.db.SelectContext(ctx, &properties, query); err != nil {
		r.logger.Error("Failed to list properties", zap.Error(err))
		return nil, fmt.Errorf("list properties: %w", err)
	}

	return properties, nil
}

// ListByCity возвращает объекты города, сравнение без учета регистра
func (r *propertyRepository) ListByCity(ctx context.Context, city string) ([]domain.Property, error) {
	query := `
		SELECT id, name, city, lat, lon
		FROM properties
		WHERE LOWER(city) = LOWER(TRIM($1))
		ORDER BY id
	`

	properties := make([]domain.Property, 0)
	if err := r.db.SelectContext(ctx, &properties, query, city); err != nil {
		r.logger.Error("Failed to list properties by city",
			zap.String("city", city),
			zap.Error(err))
		return nil, fmt.Errorf("list properties by city: %w", err)
	}

	return properties, nil
}

// Count возвращает количество объектов
func (r *propertyRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM properties`); err != nil {
		return 0, fmt.Errorf("count properties: %w", err)
	}
	return count, nil
}

// InsertBatch добавляет объекты одной транзакцией
func (r *propertyRepository) InsertBatch(ctx context.Context, properties []domain.Property) error {
	for _, p := range properties {
		if err := p.Validate(); err != nil {
			return err
		}
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PreparexContext(ctx, `INSERT INTO properties (name, city, lat, lon) VALUES ($1, $2, $3, $4)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range properties {
		if _, err := stmt.ExecContext(ctx, p.Name, p.City, p.Lat, p.Lon); err != nil {
			return fmt.Errorf("insert property %q: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	r.logger.Info("Properties inserted", zap.Int("count", len(properties)))
	return nil
}
