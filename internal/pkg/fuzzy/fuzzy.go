// Package fuzzy реализует оценки похожести строк по шкале 0-100
// в духе fuzzywuzzy: Ratio, PartialRatio, TokenSortRatio и взвешенная WRatio.
// Расстояние редактирования считается через github.com/agnivade/levenshtein.
package fuzzy

import (
	"math"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Match - лучший кандидат из словаря
type Match struct {
	Choice string
	Score  int
	Index  int
}

// Ratio - 100 * (1 - d/maxLen), где d - расстояние Левенштейна по рунам
func Ratio(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	maxLen := max(len(ra), len(rb))
	if maxLen == 0 {
		return 100
	}
	d := levenshtein.ComputeDistance(a, b)
	return int(math.Round(100 * (1 - float64(d)/float64(maxLen))))
}

// PartialRatio - лучшая Ratio короткой строки против окон длинной строки той же длины
func PartialRatio(a, b string) int {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		if len(long) == 0 {
			return 100
		}
		return 0
	}

	best := 0
	s := string(short)
	for i := 0; i+len(short) <= len(long); i++ {
		if r := Ratio(s, string(long[i:i+len(short)])); r > best {
			best = r
			if best == 100 {
				break
			}
		}
	}
	return best
}

// TokenSortRatio - Ratio после сортировки слов
func TokenSortRatio(a, b string) int {
	return Ratio(sortTokens(a), sortTokens(b))
}

// WRatio - взвешенная оценка: максимум из Ratio, масштабированной PartialRatio
// (при заметной разнице длин) и TokenSortRatio
func WRatio(a, b string) int {
	la, lb := len([]rune(a)), len([]rune(b))
	if la == 0 || lb == 0 {
		return 0
	}

	base := float64(Ratio(a, b))
	lenRatio := float64(max(la, lb)) / float64(min(la, lb))

	if lenRatio < 1.5 {
		tsor := float64(TokenSortRatio(a, b)) * 0.95
		return int(math.Round(math.Max(base, tsor)))
	}

	partialScale := 0.9
	if lenRatio >= 8 {
		partialScale = 0.6
	}

	partial := float64(PartialRatio(a, b)) * partialScale
	ptsor := float64(PartialRatio(sortTokens(a), sortTokens(b))) * 0.95 * partialScale

	return int(math.Round(math.Max(base, math.Max(partial, ptsor))))
}

// ExtractOne возвращает кандидата с максимальной WRatio, если она >= cutoff.
// При равных оценках побеждает кандидат, стоящий раньше в choices.
// Сравнение идет без учета регистра.
func ExtractOne(query string, choices []string, cutoff int) (Match, bool) {
	q := strings.ToLower(query)
	best := Match{Index: -1, Score: -1}

	for i, choice := range choices {
		score := WRatio(q, strings.ToLower(choice))
		if score > best.Score {
			best = Match{Choice: choice, Score: score, Index: i}
		}
	}

	if best.Index < 0 || best.Score < cutoff {
		return Match{}, false
	}
	return best, true
}

func sortTokens(s string) string {
	tokens := strings.Fields(strings.ToLower(s))
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
