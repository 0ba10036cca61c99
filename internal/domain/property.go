package domain

import (
	"fmt"
	"math"
	"strings"
)

// Coordinates - точка в градусах WGS84
type Coordinates struct {
	Lat float64 `json:"lat" db:"lat"`
	Lon float64 `json:"lon" db:"lon"`
}

// Valid проверяет, что координаты конечны и лежат в допустимых диапазонах
func (c Coordinates) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lon, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// Property - объект размещения (хостел, отель) из справочника
type Property struct {
	ID   int64   `json:"id" db:"id"`
	Name string  `json:"name" db:"name"`
	City string  `json:"city" db:"city"`
	Lat  float64 `json:"lat" db:"lat"`
	Lon  float64 `json:"lon" db:"lon"`
}

// Coordinates возвращает координаты объекта
func (p Property) Coordinates() Coordinates {
	return Coordinates{Lat: p.Lat, Lon: p.Lon}
}

// Validate проверяет инварианты справочника: непустые имя и город, валидные координаты
func (p Property) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: empty property name", ErrCatalogInvalid)
	}
	if strings.TrimSpace(p.City) == "" {
		return fmt.Errorf("%w: property %q has empty city", ErrCatalogInvalid, p.Name)
	}
	if !p.Coordinates().Valid() {
		return fmt.Errorf("%w: property %q has invalid coordinates (%f, %f)",
			ErrCatalogInvalid, p.Name, p.Lat, p.Lon)
	}
	return nil
}

// NearbyProperty - объект с расстоянием до точки запроса
type NearbyProperty struct {
	Property   Property
	DistanceKm float64
}
