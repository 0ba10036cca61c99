package usecase

import (
	"sort"

	"github.com/property-locator/internal/domain"
	"github.com/property-locator/internal/pkg/utils"
)

// ProximitySearch - поиск объектов в радиусе от точки
type ProximitySearch struct {
	radiusKm float64
}

func NewProximitySearch(radiusKm float64) *ProximitySearch {
	return &ProximitySearch{radiusKm: radiusKm}
}

// RadiusKm - радиус поиска в километрах
func (s *ProximitySearch) RadiusKm() float64 {
	return s.radiusKm
}

// Nearby возвращает объекты не дальше радиуса, по возрастанию расстояния.
// Фильтр и сортировка работают с точным расстоянием, в результат идет округленное
// до сотых. При равных расстояниях сохраняется порядок справочника.
func (s *ProximitySearch) Nearby(origin domain.Coordinates, catalog *domain.Catalog) []domain.NearbyProperty {
	nearby := make([]domain.NearbyProperty, 0)
	for _, p := range catalog.All() {
		d := utils.HaversineDistance(origin.Lat, origin.Lon, p.Lat, p.Lon)
		if d <= s.radiusKm {
			nearby = append(nearby, domain.NearbyProperty{Property: p, DistanceKm: d})
		}
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	for i := range nearby {
		nearby[i].DistanceKm = utils.RoundTo(nearby[i].DistanceKm, 2)
	}
	return nearby
}
