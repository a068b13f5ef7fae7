package typing

import (
	"strings"

	"github.com/verte-zerg/zitype/internal/translit"
)

// maxNormalizePasses bounds Settle when a transliterator emits logographs.
const maxNormalizePasses = 3

// Normalizer converts logographic characters typed directly into their spelling.
type Normalizer struct {
	tr translit.Transliterator
}

// NewNormalizer returns a Normalizer spelling characters with tr.
func NewNormalizer(tr translit.Transliterator) *Normalizer {
	return &Normalizer{tr: tr}
}

// Normalize replaces every logographic character with its spelling in one pass.
func (n *Normalizer) Normalize(s string) string {
	if !translit.ContainsLogograph(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !translit.IsLogograph(r) {
			b.WriteRune(r)
			continue
		}
		if n.tr == nil {
			continue
		}
		spelling, err := n.tr.Transliterate(r)
		if err != nil {
			continue
		}
		b.WriteString(spelling)
	}
	return b.String()
}

// Settle normalizes s until no logographic character remains. It gives up
// after maxNormalizePasses and reports false.
func (n *Normalizer) Settle(s string) (string, bool) {
	for i := 0; i < maxNormalizePasses; i++ {
		if !translit.ContainsLogograph(s) {
			return s, true
		}
		s = n.Normalize(s)
	}
	return s, !translit.ContainsLogograph(s)
}

// Rewrite is the settled content of a live input buffer.
type Rewrite struct {
	Text    string
	Cursor  int
	Changed bool
}

// Rewrite settles raw and shifts cursor by the rune length delta, clamped to
// the new text. ok is false when the input never settles.
func (n *Normalizer) Rewrite(raw string, cursor int) (Rewrite, bool) {
	text, ok := n.Settle(raw)
	if !ok {
		return Rewrite{Text: raw, Cursor: cursor}, false
	}
	if text == raw {
		return Rewrite{Text: raw, Cursor: cursor}, true
	}
	newLen := len([]rune(text))
	pos := cursor + newLen - len([]rune(raw))
	if pos < 0 {
		pos = 0
	}
	if pos > newLen {
		pos = newLen
	}
	return Rewrite{Text: text, Cursor: pos, Changed: true}, true
}
