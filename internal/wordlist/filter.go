// Package wordlist provides word list filtering helpers.
package wordlist

import (
	"strings"
	"unicode"

	"github.com/verte-zerg/zitype/internal/translit"
)

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterVocabulary keeps words made of logographic characters only, so every
// sampled word is typed through its spelling.
func FilterVocabulary(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !translit.IsLogograph(r) {
			return false
		}
	}
	return true
}

// FilterPrintable keeps words without whitespace or control characters.
func FilterPrintable(word string) bool {
	if word == "" {
		return false
	}
	return !strings.ContainsFunc(word, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	})
}

// Apply returns the words kept by filter.
func Apply(words []string, filter FilterFunc) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if filter(w) {
			out = append(out, w)
		}
	}
	return out
}
