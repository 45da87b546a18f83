package ref

import (
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/FocuswithJustin/sermonref/core/canon"
)

// Validator checks references against one corpus.
type Validator struct {
	corpus *canon.Corpus
}

// NewValidator returns a validator for c.
func NewValidator(c *canon.Corpus) *Validator {
	return &Validator{corpus: c}
}

var defaultValidator = sync.OnceValue(func() *Validator {
	return NewValidator(canon.Default())
})

// Default returns the validator for the bundled corpus.
func Default() *Validator {
	return defaultValidator()
}

// Validate checks text against the bundled corpus.
func Validate(text string) (*ParsedReference, error) {
	return Default().Validate(text)
}

// Corpus returns the corpus v validates against.
func (v *Validator) Corpus() *canon.Corpus {
	return v.corpus
}

// Validate parses text and checks that the range it denotes exists.
// On failure the returned error is a *Rejection.
func (v *Validator) Validate(text string) (*ParsedReference, error) {
	text = strings.TrimLeftFunc(text, unicode.IsSpace)

	book, prefix, ok := v.corpus.FindBook(text)
	if !ok {
		return nil, reject(ReasonBookNotFound)
	}

	rng, rej := parseBody(stripSpace(text[len(prefix):]))
	if rej != nil {
		return nil, rej
	}
	if rej := checkRange(book, rng); rej != nil {
		return nil, rej
	}
	return &ParsedReference{Book: book, Range: rng}, nil
}

// ValidateParts applies the form-field contract: a reference split into a
// book field and a passage field. Both empty is valid and returns nil, nil.
// Exactly one empty is an incomplete reference.
func (v *Validator) ValidateParts(book, passage string) (*ParsedReference, error) {
	book = strings.TrimSpace(book)
	passage = strings.TrimSpace(passage)
	switch {
	case book == "" && passage == "":
		return nil, nil
	case book == "" || passage == "":
		return nil, incomplete()
	}
	return v.Validate(book + " " + passage)
}

// parseBody turns the text after the book name, whitespace removed, into a
// range. Syntax is checked in a fixed order: dashes, then the start's colons,
// then the end's.
func parseBody(body string) (Range, *Rejection) {
	if body == "" {
		return Range{Start: Chapter(1)}, nil
	}

	halves := strings.Split(body, "-")
	if len(halves) > 2 {
		return Range{}, reject(ReasonTooManyDashes)
	}

	start := strings.Split(halves[0], ":")
	if len(start) > 2 {
		return Range{}, reject(ReasonTooManyColonsStart)
	}
	var end []string
	if len(halves) == 2 {
		end = strings.Split(halves[1], ":")
		if len(end) > 2 {
			return Range{}, reject(ReasonTooManyColonsEnd)
		}
	}

	var rng Range
	if len(start) == 1 {
		rng.Start = Chapter(number(start[0]))
	} else {
		rng.Start = Verse(number(start[0]), number(start[1]))
	}

	switch {
	case end == nil:
	case len(end) == 2:
		l := Verse(number(end[0]), number(end[1]))
		rng.End = &l
	case rng.Start.HasVerse():
		l := Verse(rng.Start.Chapter, number(end[0]))
		rng.End = &l
	default:
		l := Chapter(number(end[0]))
		rng.End = &l
	}
	return rng, nil
}

// checkRange verifies that every locus of rng exists in b and that the end
// does not precede the start.
func checkRange(b *canon.Book, rng Range) *Rejection {
	loci := []Locus{rng.Start}
	if rng.End != nil {
		loci = append(loci, *rng.End)
	}
	for _, l := range loci {
		if !b.ChapterInRange(l.Chapter) {
			return outOfRange(b, l)
		}
		if l.HasVerse() && !b.VerseInRange(l.Chapter, *l.Verse) {
			return outOfRange(b, l)
		}
	}

	if rng.End != nil && rng.End.Before(rng.Start) {
		return reject(ReasonEndBeforeStart)
	}
	return nil
}

// number parses a chapter or verse component. Anything other than a run of
// ASCII digits that fits in an int yields 0, which no range check accepts.
func number(s string) int {
	if s == "" {
		return 0
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func stripSpace(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), "")
}
