// Package typing maps a flat keystroke stream onto typing units and judges it.
package typing

import (
	"unicode"

	"github.com/verte-zerg/zitype/internal/translit"
)

// Kind distinguishes phonetic runs from literal characters.
type Kind int

const (
	// PhoneticGroup is typed as the spelling of one logographic character.
	PhoneticGroup Kind = iota
	// LiteralChar is typed as itself.
	LiteralChar
)

// Status is the classification of one expected character.
type Status int

const (
	Untyped Status = iota
	Active
	Correct
	Incorrect
)

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "untyped"
	}
}

// Cell is one expected character of a unit.
type Cell struct {
	Char   rune
	Status Status
	// Typed marks a cell whose judgment is final for display.
	Typed bool
}

// Unit is one element of the segmented target text.
type Unit struct {
	Kind Kind
	// SourceIndex is the rune offset of Source in the target text.
	SourceIndex int
	Source      rune
	Cells       []Cell
	Active      bool
}

// Spelling returns the expected characters of the unit.
func (u Unit) Spelling() []rune {
	out := make([]rune, len(u.Cells))
	for i, c := range u.Cells {
		out[i] = c.Char
	}
	return out
}

// Segment splits text into typing units. Logographic characters become
// phonetic groups spelled by tr; a failing or missing transliterator yields an
// empty spelling. Whitespace other than a plain space is dropped.
func Segment(text string, tr translit.Transliterator) []Unit {
	runes := []rune(text)
	units := make([]Unit, 0, len(runes))
	for i, r := range runes {
		switch {
		case translit.IsLogograph(r):
			units = append(units, Unit{
				Kind:        PhoneticGroup,
				SourceIndex: i,
				Source:      r,
				Cells:       spellingCells(r, tr),
			})
		case r == ' ' || !unicode.IsSpace(r):
			units = append(units, Unit{
				Kind:        LiteralChar,
				SourceIndex: i,
				Source:      r,
				Cells:       []Cell{{Char: r}},
			})
		}
	}
	if len(units) > 0 {
		units[0].Active = true
		if len(units[0].Cells) > 0 {
			units[0].Cells[0].Status = Active
		}
	}
	return units
}

func spellingCells(r rune, tr translit.Transliterator) []Cell {
	if tr == nil {
		return nil
	}
	spelling, err := tr.Transliterate(r)
	if err != nil {
		return nil
	}
	cells := make([]Cell, 0, len(spelling))
	for _, ch := range spelling {
		cells = append(cells, Cell{Char: ch})
	}
	return cells
}
