package wordsearch

import (
	"context"
	"strings"

	"crosswarped.com/wordsearch/pkg/primitives"
)

// WordSource supplies word lists for a theme.
type WordSource interface {
	// LoadWords returns at most limit words for theme whose normalized form fits in maxLen letters.
	LoadWords(ctx context.Context, theme string, maxLen, limit int) ([]string, error)
}

// cleanWords trims entries and drops blanks, words that do not fit in maxLen letters and repeats of
// an earlier normalized form. At most limit words are kept (limit <= 0 keeps all).
func cleanWords(raw []string, maxLen, limit int) []string {
	seen := make(map[string]bool, len(raw))
	var words []string
	for _, w := range raw {
		w = strings.TrimSpace(w)
		n := primitives.Normalize(w)
		if n == "" || (maxLen > 0 && len(n) > maxLen) || seen[n] {
			continue
		}
		seen[n] = true
		words = append(words, w)
		if limit > 0 && len(words) == limit {
			break
		}
	}
	return words
}
