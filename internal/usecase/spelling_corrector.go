package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/property-locator/internal/domain"
	"github.com/property-locator/internal/domain/repository"
	"github.com/property-locator/internal/pkg/fuzzy"
	"github.com/property-locator/internal/pkg/textnorm"
)

// SpellingCorrector - исправление опечаток в названии места.
// Сначала нечеткое сравнение со словарем известных городов, затем (если словарь
// не помог) один запрос к сервису подсказок, иначе запрос возвращается как есть.
type SpellingCorrector struct {
	vocabulary []string
	cutoff     int
	suggester  repository.SuggestionRepository
	logger     *zap.Logger
}

// NewSpellingCorrector создает корректор. suggester может быть nil - тогда
// используется только словарь.
func NewSpellingCorrector(
	vocabulary []string,
	cutoff int,
	suggester repository.SuggestionRepository,
	logger *zap.Logger,
) *SpellingCorrector {
	return &SpellingCorrector{
		vocabulary: vocabulary,
		cutoff:     cutoff,
		suggester:  suggester,
		logger:     logger,
	}
}

// Correct нормализует запрос и подбирает наиболее вероятное название.
// Невалидный запрос (цифры, длина вне 2-50) возвращает domain.ErrInvalidQuery
// вместе с частично заполненным результатом.
func (c *SpellingCorrector) Correct(ctx context.Context, query string) (domain.CorrectedLocation, error) {
	loc := domain.CorrectedLocation{
		Original:   query,
		Normalized: textnorm.Normalize(query),
	}

	if !textnorm.ValidQuery(loc.Normalized) {
		return loc, fmt.Errorf("%w: %q", domain.ErrInvalidQuery, query)
	}

	if m, ok := fuzzy.ExtractOne(loc.Normalized, c.vocabulary, c.cutoff); ok {
		c.logger.Debug("Query matched vocabulary",
			zap.String("query", loc.Normalized),
			zap.String("city", m.Choice),
			zap.Int("score", m.Score))
		loc.Name = strings.ToLower(m.Choice)
		loc.Source = domain.CorrectionSourceVocabulary
		return loc, nil
	}

	if suggestion, ok := c.suggest(ctx, loc.Normalized); ok {
		loc.Name = suggestion
		loc.Source = domain.CorrectionSourceSuggestion
		return loc, nil
	}

	loc.Name = loc.Normalized
	loc.Source = domain.CorrectionSourcePassthrough
	return loc, nil
}

// suggest принимает первую подсказку, только если она отличается от ввода и содержит букву.
// Ошибки сервиса подсказок не прерывают разрешение запроса.
func (c *SpellingCorrector) suggest(ctx context.Context, normalized string) (string, bool) {
	if c.suggester == nil {
		return "", false
	}

	suggestions, err := c.suggester.Suggest(ctx, normalized)
	if err != nil {
		c.logger.Warn("Suggestion service failed",
			zap.String("query", normalized),
			zap.Error(err))
		return "", false
	}
	if len(suggestions) == 0 {
		return "", false
	}

	best := textnorm.Normalize(suggestions[0])
	if best == normalized || !textnorm.HasLetter(best) {
		return "", false
	}

	c.logger.Debug("Query corrected by suggestion service",
		zap.String("query", normalized),
		zap.String("suggestion", best))
	return best, true
}
