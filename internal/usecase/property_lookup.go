package usecase

import "github.com/property-locator/internal/domain"

// PropertyLookup - прямое совпадение запроса с городом объекта
type PropertyLookup struct {
	catalog *domain.Catalog
}

func NewPropertyLookup(catalog *domain.Catalog) *PropertyLookup {
	return &PropertyLookup{catalog: catalog}
}

// FindDirect возвращает объекты, город которых совпадает с исправленным названием
// (без учета регистра), в порядке справочника
func (l *PropertyLookup) FindDirect(location domain.CorrectedLocation) []domain.Property {
	if location.Name == "" {
		return nil
	}
	return l.catalog.ByCity(location.Name)
}
