// Package ref parses and validates Scripture references such as
// "Genesis 1:1-2:3" against a canon.Corpus.
//
// Accepted grammar, after the book name has been resolved:
//
//	body  := point ("-" point)?
//	point := INT (":" INT)?
//
// Whitespace after the book name is ignored. A bare book name stands for
// chapter 1. When the start names a verse and the end is a single number,
// the end is a verse in the start's chapter ("John 3:16-18").
//
// Validation is a pure function of the input and the corpus; a Validator is
// safe for concurrent use.
package ref

import (
	"strconv"
	"strings"

	"github.com/FocuswithJustin/sermonref/core/canon"
)

// Locus is a single position in a book: a chapter, or a chapter and verse.
type Locus struct {
	Chapter int  `json:"chapter"`
	Verse   *int `json:"verse,omitempty"`
}

// Chapter returns a chapter-only locus.
func Chapter(ch int) Locus {
	return Locus{Chapter: ch}
}

// Verse returns a chapter-and-verse locus.
func Verse(ch, v int) Locus {
	return Locus{Chapter: ch, Verse: &v}
}

// HasVerse reports whether the locus names a verse.
func (l Locus) HasVerse() bool {
	return l.Verse != nil
}

// Before reports whether l is strictly before other. Chapters are compared
// first; verses only break a chapter tie when both loci name one, so
// "3" and "3:5" are never ordered against each other.
func (l Locus) Before(other Locus) bool {
	if l.Chapter != other.Chapter {
		return l.Chapter < other.Chapter
	}
	if l.Verse == nil || other.Verse == nil {
		return false
	}
	return *l.Verse < *other.Verse
}

// Equal reports whether both loci name the same chapter and verse.
func (l Locus) Equal(other Locus) bool {
	if l.Chapter != other.Chapter || l.HasVerse() != other.HasVerse() {
		return false
	}
	return !l.HasVerse() || *l.Verse == *other.Verse
}

// String formats the locus as "C" or "C:V".
func (l Locus) String() string {
	if l.Verse == nil {
		return strconv.Itoa(l.Chapter)
	}
	return strconv.Itoa(l.Chapter) + ":" + strconv.Itoa(*l.Verse)
}

// Range is a start locus and an optional end locus. A validated range never
// has its end before its start.
type Range struct {
	Start Locus  `json:"start"`
	End   *Locus `json:"end,omitempty"`
}

// Equal reports whether two ranges denote the same span.
func (r Range) Equal(other Range) bool {
	if !r.Start.Equal(other.Start) || (r.End == nil) != (other.End == nil) {
		return false
	}
	return r.End == nil || r.End.Equal(*other.End)
}

// String formats the range body the way the parser reads it back.
func (r Range) String() string {
	if r.End == nil {
		return r.Start.String()
	}
	end := *r.End
	if r.Start.HasVerse() && end.HasVerse() && end.Chapter == r.Start.Chapter {
		return r.Start.String() + "-" + strconv.Itoa(*end.Verse)
	}
	return r.Start.String() + "-" + end.String()
}

// ParsedReference is a reference that passed validation. It is only
// produced by a Validator and is never partially populated.
type ParsedReference struct {
	Book  *canon.Book
	Range Range
}

// String returns the canonical text form, e.g. "Genesis 1:1-2:3".
// Validating it again yields the same Range.
func (p *ParsedReference) String() string {
	return p.Book.Name + " " + p.Range.String()
}

// OSIS returns the OSIS ID form, e.g. "Gen.1.1-Gen.2.3". Books without an
// OSIS ID use their name with spaces removed.
func (p *ParsedReference) OSIS() string {
	book := p.Book.OSIS
	if book == "" {
		book = strings.ReplaceAll(p.Book.Name, " ", "")
	}
	var sb strings.Builder
	writeOSISPoint(&sb, book, p.Range.Start)
	if p.Range.End != nil {
		sb.WriteByte('-')
		writeOSISPoint(&sb, book, *p.Range.End)
	}
	return sb.String()
}

func writeOSISPoint(sb *strings.Builder, book string, l Locus) {
	sb.WriteString(book)
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(l.Chapter))
	if l.Verse != nil {
		sb.WriteByte('.')
		sb.WriteString(strconv.Itoa(*l.Verse))
	}
}
