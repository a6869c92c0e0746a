package resolver

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MichalMitros/catalog-feed-importer/internal/platform/models"
	"github.com/samber/lo"
)

const (
	// minWordLength is exclusive lower bound of meaningful word length, in runes.
	minWordLength = 2
	// minKeywordScore is minimal number of keyword words found in product name.
	minKeywordScore = 2
	// minKeywordCoverage is minimal share of keyword phrase words found in product name.
	minKeywordCoverage = 0.5
)

// matchKeywords returns id of category whose keywords fit product name best.
// Keyword phrase contained in product name wins immediately, otherwise categories are scored
// by number of phrase words found in product name. Ties are won by category listed first.
func matchKeywords(categories []models.Category, productName string) (int64, bool) {
	name := strings.ToLower(productName)
	nameWords := productWords(name)

	var (
		bestID    int64
		bestScore int
	)

	for ix := range categories {
		score := 0

		for _, keyword := range categories[ix].Keywords {
			phrase := strings.ToLower(strings.TrimSpace(keyword))
			if phrase == "" {
				continue
			}

			if strings.Contains(name, phrase) {
				return categories[ix].ID, true
			}

			words := keywordWords(phrase)
			if len(words) == 0 {
				continue
			}

			overlap := len(lo.Filter(words, func(w string, _ int) bool {
				_, ok := nameWords[w]
				return ok
			}))

			if float64(overlap)/float64(len(words)) >= minKeywordCoverage {
				score = max(score, overlap)
			}
		}

		if score > bestScore {
			bestID, bestScore = categories[ix].ID, score
		}
	}

	if bestScore < minKeywordScore {
		return 0, false
	}

	return bestID, true
}

// productWords returns set of product name words longer than two runes,
// excluding numbers and words containing "test".
func productWords(name string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(name) {
		if utf8.RuneCountInString(w) <= minWordLength || isNumber(w) || strings.Contains(w, "test") {
			continue
		}
		words[w] = struct{}{}
	}

	return words
}

func keywordWords(phrase string) []string {
	return lo.Uniq(lo.Filter(strings.Fields(phrase), func(w string, _ int) bool {
		return utf8.RuneCountInString(w) > minWordLength
	}))
}

func isNumber(word string) bool {
	for _, r := range word {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}
