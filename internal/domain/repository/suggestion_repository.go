package repository

import "context"

// SuggestionRepository - внешний сервис подсказок (автодополнение/исправление опечаток)
type SuggestionRepository interface {
	// Suggest возвращает подсказки, лучшая первой
	Suggest(ctx context.Context, text string) ([]string, error)
}
