package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/property-locator/internal/domain/repository"
	"github.com/property-locator/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewPropertyRepositoryForTest creates a property repository with test database and logger
func NewPropertyRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.PropertyRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewPropertyRepository(pgDB)
}
