package typing

import "golang.org/x/text/width"

const nbsp = '\u00a0'

// fullWidthPunct lists the source-script punctuation that accepts its ASCII form.
var fullWidthPunct = map[rune]struct{}{
	'，': {},
	'。': {},
	'！': {},
	'？': {},
	'；': {},
}

// Equivalent reports whether typed counts as expected for a literal character.
func Equivalent(expected, typed rune) bool {
	if expected == typed {
		return true
	}
	if isSpace(expected) && isSpace(typed) {
		return true
	}
	if _, ok := fullWidthPunct[expected]; ok {
		return typed == asciiPunct(expected)
	}
	return false
}

func asciiPunct(r rune) rune {
	// The ideographic full stop is wide, not fullwidth, so it has no narrow form.
	if r == '。' {
		return '.'
	}
	return width.LookupRune(r).Narrow()
}

func isSpace(r rune) bool {
	return r == ' ' || r == nbsp
}
