// Package translit maps logographic characters to their tone-free phonetic spelling.
package translit

import (
	"fmt"
	"strings"

	"github.com/mozillazg/go-pinyin"
)

const (
	rangeStart = '\u4e00'
	rangeEnd   = '\u9fa5'
)

// Transliterator returns the tone-free spelling of a single logographic character.
type Transliterator interface {
	Transliterate(r rune) (string, error)
}

// Func adapts a plain function to Transliterator.
type Func func(r rune) (string, error)

// Transliterate implements Transliterator.
func (f Func) Transliterate(r rune) (string, error) {
	return f(r)
}

// IsLogograph reports whether r belongs to the logographic script range.
func IsLogograph(r rune) bool {
	return r >= rangeStart && r <= rangeEnd
}

// ContainsLogograph reports whether s has any logographic character.
func ContainsLogograph(s string) bool {
	for _, r := range s {
		if IsLogograph(r) {
			return true
		}
	}
	return false
}

// Pinyin transliterates with go-pinyin in tone-free style.
type Pinyin struct {
	args pinyin.Args
}

// NewPinyin returns a Pinyin adapter without heteronyms or fallback.
func NewPinyin() *Pinyin {
	args := pinyin.NewArgs()
	args.Style = pinyin.Normal
	args.Heteronym = false
	args.Fallback = func(rune, pinyin.Args) []string { return nil }
	return &Pinyin{args: args}
}

// Transliterate implements Transliterator. The umlaut vowel is spelled as "v".
func (p *Pinyin) Transliterate(r rune) (string, error) {
	if !IsLogograph(r) {
		return "", fmt.Errorf("not a logographic character: %q", r)
	}
	readings := pinyin.SinglePinyin(r, p.args)
	if len(readings) == 0 || readings[0] == "" {
		return "", fmt.Errorf("no reading for %q", r)
	}
	return strings.ReplaceAll(readings[0], "ü", "v"), nil
}
