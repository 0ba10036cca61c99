package dto

// ResolveRequest - запрос на поиск ближайших объектов по названию места
type ResolveRequest struct {
	Query string `json:"query" validate:"required,location_query" example:"jaiselmer"`
}

// ListPropertiesRequest - фильтр списка объектов справочника
type ListPropertiesRequest struct {
	City string `query:"city" validate:"omitempty,max=50"`
}
