package ref

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/sermonref/core/canon"
)

// osisGrammar is the participle grammar for OSIS IDs.
// Examples: "Gen", "Gen.1", "Gen.1.1", "Gen.1.1-Gen.2.3", "Gen.1.1-5", "1John.3.16"
//
//nolint:govet // participle grammar tags are not standard struct tags
type osisGrammar struct {
	Start *osisPoint `parser:"@@"`
	End   *osisEnd   `parser:"( '-' @@ )?"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type osisPoint struct {
	Book    string       `parser:"@Ident"`
	Chapter *osisChapter `parser:"( '.' @@ )?"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type osisChapter struct {
	Number int  `parser:"@Int"`
	Verse  *int `parser:"( '.' @Int )?"`
}

// osisEnd is either a full point or a bare number continuing the start.
//
//nolint:govet // participle grammar tags are not standard struct tags
type osisEnd struct {
	Point  *osisPoint `parser:"  @@"`
	Number *int       `parser:"| @Int"`
}

// osisLexer tokenizes OSIS IDs. Ident is tried before Int so that numbered
// books ("1John") lex as a single token.
var osisLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[1-3]?[A-Za-z]+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[.\-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var osisParser = participle.MustBuild[osisGrammar](
	participle.Lexer(osisLexer),
	participle.Elide("Whitespace"),
)

// ValidateOSIS checks an OSIS ID such as "Gen.1.1-Gen.2.3" against the
// bundled corpus.
func ValidateOSIS(id string) (*ParsedReference, error) {
	return Default().ValidateOSIS(id)
}

// ValidateOSIS parses an OSIS ID, resolves its book by OSIS ID and applies
// the same range and ordering checks as Validate.
//
// A bare book ("Jude") stands for chapter 1. A bare number after the dash
// continues the start: a verse when the start names one, else a chapter.
// An end naming only a chapter after a start naming a verse runs to the last
// verse of that chapter. Ranges across books are out of range.
func (v *Validator) ValidateOSIS(id string) (*ParsedReference, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, reject(ReasonMalformedOSIS)
	}

	parsed, err := osisParser.ParseString("", id)
	if err != nil {
		r := reject(ReasonMalformedOSIS)
		r.Suggestion = "Use the form Book.Chapter.Verse, for example Gen.1.1-Gen.2.3."
		return nil, r
	}

	book, ok := v.corpus.BookByOSIS(parsed.Start.Book)
	if !ok {
		return nil, reject(ReasonBookNotFound)
	}

	rng := Range{Start: parsed.Start.locus()}
	if parsed.End != nil {
		end, rej := v.resolveOSISEnd(parsed.End, book, rng.Start)
		if rej != nil {
			return nil, rej
		}
		rng.End = &end
	}

	if rej := checkRange(book, rng); rej != nil {
		return nil, rej
	}
	return &ParsedReference{Book: book, Range: rng}, nil
}

func (v *Validator) resolveOSISEnd(e *osisEnd, book *canon.Book, start Locus) (Locus, *Rejection) {
	if e.Point == nil {
		if start.HasVerse() {
			return Verse(start.Chapter, *e.Number), nil
		}
		return Chapter(*e.Number), nil
	}

	endBook, ok := v.corpus.BookByOSIS(e.Point.Book)
	if !ok {
		return Locus{}, reject(ReasonBookNotFound)
	}
	if endBook != book {
		r := reject(ReasonOutOfRange)
		r.Suggestion = "A reference cannot span more than one book."
		return Locus{}, r
	}
	if e.Point.Chapter == nil {
		r := reject(ReasonMalformedOSIS)
		r.Suggestion = "The end of an OSIS range must name a chapter."
		return Locus{}, r
	}

	end := e.Point.locus()
	if start.HasVerse() && !end.HasVerse() {
		end = Verse(end.Chapter, book.VerseCount(end.Chapter))
	}
	return end, nil
}

func (p *osisPoint) locus() Locus {
	if p.Chapter == nil {
		return Chapter(1)
	}
	if p.Chapter.Verse == nil {
		return Chapter(p.Chapter.Number)
	}
	return Verse(p.Chapter.Number, *p.Chapter.Verse)
}
