// Package textnorm нормализует пользовательский ввод названий мест.
package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	MinQueryLength = 2
	MaxQueryLength = 50
)

// Normalize убирает пробелы по краям, приводит к нижнему регистру,
// удаляет диакритику и схлопывает повторяющиеся пробелы.
func Normalize(s string) string {
	folded, _, err := transform.String(
		transform.Chain(
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)),
			norm.NFC,
		),
		strings.ToLower(strings.TrimSpace(s)),
	)
	if err != nil {
		folded = strings.ToLower(strings.TrimSpace(s))
	}

	return strings.Join(strings.Fields(folded), " ")
}

// ValidQuery проверяет нормализованный запрос: длина 2-50 символов, без цифр
func ValidQuery(normalized string) bool {
	n := utf8.RuneCountInString(normalized)
	if n < MinQueryLength || n > MaxQueryLength {
		return false
	}
	return !HasDigit(normalized)
}

func HasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func HasLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}
