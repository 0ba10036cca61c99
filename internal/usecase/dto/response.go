package dto

import "github.com/property-locator/internal/domain"

// ResolveResponse - ответ на поиск ближайших объектов.
// nearest_properties присутствует для direct_match, proximity_match и no_match
// (для no_match - пустой массив) и отсутствует для остальных типов.
type ResolveResponse struct {
	MatchedType       string             `json:"matched_type" example:"proximity_match"`
	MatchedCity       string             `json:"matched_city,omitempty" example:"sissu"`
	NearestProperties *[]NearestProperty `json:"nearest_properties,omitempty"`
	Message           string             `json:"message,omitempty"`
}

// NearestProperty - объект и расстояние до него
type NearestProperty struct {
	Property   string  `json:"property" example:"Moustache Koksar"`
	DistanceKm float64 `json:"distance_km" example:"12.87"`
}

// NewResolveResponse конвертирует результат разрешения в ответ API
func NewResolveResponse(result *domain.MatchResult) ResolveResponse {
	resp := ResolveResponse{
		MatchedType: string(result.Type),
		MatchedCity: result.MatchedCity,
		Message:     result.Message,
	}

	switch result.Type {
	case domain.MatchedTypeDirectMatch, domain.MatchedTypeProximityMatch, domain.MatchedTypeNoMatch:
		nearest := make([]NearestProperty, 0, len(result.Properties))
		for _, p := range result.Properties {
			nearest = append(nearest, NearestProperty{
				Property:   p.Property.Name,
				DistanceKm: p.DistanceKm,
			})
		}
		resp.NearestProperties = &nearest
	}

	return resp
}

// PropertyListResponse - список объектов справочника
type PropertyListResponse struct {
	Properties []domain.Property `json:"properties"`
	Total      int               `json:"total"`
}

// HealthResponse - ответ health-check
type HealthResponse struct {
	Status string `json:"status" example:"healthy"`
	Time   int64  `json:"time"`
}
