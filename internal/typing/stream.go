package typing

import (
	"sort"
	"strings"
	"unicode"
)

// Entry records the half-open range of the canonical stream owned by a unit.
type Entry struct {
	Unit  int
	Start int
	End   int
}

// Stream is the canonical expected character stream of a unit sequence.
type Stream struct {
	Text    []rune
	Entries []Entry
}

// Build flattens units into the canonical stream. Entries are aligned with
// units by index.
func Build(units []Unit) Stream {
	stream := Stream{Entries: make([]Entry, 0, len(units))}
	for i, u := range units {
		start := len(stream.Text)
		for _, c := range u.Cells {
			stream.Text = append(stream.Text, c.Char)
		}
		stream.Entries = append(stream.Entries, Entry{Unit: i, Start: start, End: len(stream.Text)})
	}
	return stream
}

// Len is the expected input length.
func (s Stream) Len() int {
	return len(s.Text)
}

func (s Stream) String() string {
	return string(s.Text)
}

// Locate returns the unit owning canonical position pos and the offset inside it.
func (s Stream) Locate(pos int) (unit, offset int, ok bool) {
	if pos < 0 || pos >= len(s.Text) {
		return 0, 0, false
	}
	idx := sort.Search(len(s.Entries), func(i int) bool {
		return s.Entries[i].End > pos
	})
	if idx == len(s.Entries) {
		return 0, 0, false
	}
	e := s.Entries[idx]
	return e.Unit, pos - e.Start, true
}

// Complete reports whether input finishes the stream: it is at least as long,
// identical, or identical once trailing whitespace is ignored on both sides.
func (s Stream) Complete(input []rune) bool {
	if len(input) >= len(s.Text) {
		return true
	}
	if string(input) == string(s.Text) {
		return true
	}
	return trimEnd(string(input)) == trimEnd(string(s.Text))
}

func trimEnd(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
