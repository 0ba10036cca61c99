package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamResolutionEvents = "stream:resolution:events"
)

// Redis keys для агрегированной статистики
const (
	StatsResolutionKey   = "stats:resolution"
	StatsUnrecognizedKey = "stats:unrecognized"
)

// ResolutionEvent - событие о разрешении одного запроса (для аналитики)
type ResolutionEvent struct {
	ID          uuid.UUID        `json:"id"`
	Query       string           `json:"query"`
	Corrected   string           `json:"corrected,omitempty"`
	Source      CorrectionSource `json:"source,omitempty"`
	MatchedType MatchedType      `json:"matched_type"`
	ResultCount int              `json:"result_count"`
	ResolvedAt  time.Time        `json:"resolved_at"`
}

// NewResolutionEvent строит событие по результату разрешения
func NewResolutionEvent(query string, result *MatchResult, now time.Time) ResolutionEvent {
	return ResolutionEvent{
		ID:          uuid.New(),
		Query:       query,
		Corrected:   result.MatchedCity,
		Source:      result.Source,
		MatchedType: result.Type,
		ResultCount: len(result.Properties),
		ResolvedAt:  now.UTC(),
	}
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}

// ResolutionStats - агрегированная статистика разрешения запросов
type ResolutionStats struct {
	Total             int64                 `json:"total"`
	ByMatchedType     map[MatchedType]int64 `json:"by_matched_type"`
	TopUnrecognized   []QueryCount          `json:"top_unrecognized"`
	CatalogProperties int                   `json:"catalog_properties"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

// QueryCount - запрос и число его повторений
type QueryCount struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}
