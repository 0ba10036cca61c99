package domain

// MatchedType - итоговый тип результата разрешения запроса
type MatchedType string

const (
	MatchedTypeUnrecognized     MatchedType = "unrecognized"
	MatchedTypeDirectMatch      MatchedType = "direct_match"
	MatchedTypeLocationNotFound MatchedType = "location_not_found"
	MatchedTypeProximityMatch   MatchedType = "proximity_match"
	MatchedTypeNoMatch          MatchedType = "no_match"
)

// AllMatchedTypes - все типы результатов в порядке приоритета
var AllMatchedTypes = []MatchedType{
	MatchedTypeUnrecognized,
	MatchedTypeDirectMatch,
	MatchedTypeLocationNotFound,
	MatchedTypeProximityMatch,
	MatchedTypeNoMatch,
}

// CorrectionSource - откуда взято исправленное название
type CorrectionSource string

const (
	CorrectionSourceVocabulary  CorrectionSource = "vocabulary"
	CorrectionSourceSuggestion  CorrectionSource = "suggestion"
	CorrectionSourcePassthrough CorrectionSource = "passthrough"
)

// CorrectedLocation - нормализованное и, по возможности, исправленное название места
type CorrectedLocation struct {
	// Original - исходная строка от клиента
	Original string
	// Normalized - исходная строка после trim/lowercase/folding
	Normalized string
	// Name - итоговое название (lowercase)
	Name   string
	Source CorrectionSource
}

// Recognized - true, если название подтверждено словарем или сервисом подсказок
func (c CorrectedLocation) Recognized() bool {
	return c.Source == CorrectionSourceVocabulary || c.Source == CorrectionSourceSuggestion
}

// MatchResult - результат разрешения одного запроса. Создается один раз и не изменяется.
type MatchResult struct {
	Type        MatchedType
	MatchedCity string
	Properties  []NearbyProperty
	Message     string

	// Attempted - названия, которые отправлялись в геокодер
	Attempted []string
	Source    CorrectionSource
}
