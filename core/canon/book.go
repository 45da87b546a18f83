// Package canon holds the reference corpus: the ordered table of Bible books
// with their names, abbreviations and verse counts per chapter.
//
// A Corpus is immutable once built and safe for concurrent use. The bundled
// KJV corpus is available through Default; alternate corpora can be loaded
// from JSON, xz-compressed JSON, XML or SQLite files with Load.
package canon

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/FocuswithJustin/sermonref/core/errors"
)

// Book describes one book of the corpus.
type Book struct {
	// Name is the canonical English name (e.g., "Genesis", "1 John").
	Name string `json:"name"`

	// OSIS is the OSIS book ID (e.g., "Gen", "1John").
	OSIS string `json:"osis"`

	// Abbreviations are accepted alternatives to Name, tried in order.
	Abbreviations []string `json:"abbr"`

	// Chapters holds the verse count of each chapter; Chapters[i] is chapter i+1.
	Chapters []int `json:"chapters"`
}

// ChapterCount returns the number of chapters in the book.
func (b *Book) ChapterCount() int {
	return len(b.Chapters)
}

// ChapterBound returns the largest number accepted where a chapter is expected.
//
// For books with several chapters this is the chapter count. One-chapter
// books store only their verse count, and by convention that same number
// bounds the number written after the book name, so "Jude 5-12" is accepted
// as a span of Jude's single chapter. The two roles share one stored integer.
func (b *Book) ChapterBound() int {
	if len(b.Chapters) == 1 {
		return b.Chapters[0]
	}
	return len(b.Chapters)
}

// VerseCount returns the number of verses in chapter, or 0 if the chapter
// does not exist.
func (b *Book) VerseCount(chapter int) int {
	if chapter < 1 || chapter > len(b.Chapters) {
		return 0
	}
	return b.Chapters[chapter-1]
}

// ChapterInRange reports whether chapter lies between 1 and ChapterBound.
func (b *Book) ChapterInRange(chapter int) bool {
	return chapter >= 1 && chapter <= b.ChapterBound()
}

// VerseInRange reports whether verse exists in chapter. It is false when the
// chapter itself does not exist.
func (b *Book) VerseInRange(chapter, verse int) bool {
	return verse >= 1 && verse <= b.VerseCount(chapter)
}

// TotalVerses returns the verse count summed over all chapters.
func (b *Book) TotalVerses() int {
	total := 0
	for _, n := range b.Chapters {
		total += n
	}
	return total
}

// candidate is one matchable spelling of a book, pre-folded for comparison.
type candidate struct {
	book   *Book
	folded string
	runes  int
}

// Corpus is an ordered, immutable table of books.
type Corpus struct {
	// ID names the corpus (e.g., "KJV").
	ID string

	books      []*Book
	candidates []candidate
	byOSIS     map[string]*Book
}

// New validates books and returns a corpus that owns copies of them.
// Declaration order is kept: it decides which book wins when several
// spellings match the same text.
func New(id string, books []*Book) (*Corpus, error) {
	if len(books) == 0 {
		return nil, errors.NewValidation("books", "corpus has no books")
	}

	fold := cases.Fold()
	c := &Corpus{
		ID:     id,
		books:  make([]*Book, 0, len(books)),
		byOSIS: make(map[string]*Book, len(books)),
	}

	for i, src := range books {
		field := fmt.Sprintf("books[%d]", i)
		if src == nil {
			return nil, errors.NewValidation(field, "book is nil")
		}
		if strings.TrimSpace(src.Name) == "" {
			return nil, errors.NewValidation(field+".name", "must not be empty")
		}
		if len(src.Chapters) == 0 {
			return nil, errors.NewValidation(field+".chapters", fmt.Sprintf("%s has no chapters", src.Name))
		}
		for ch, verses := range src.Chapters {
			if verses < 1 {
				return nil, errors.NewValidation(
					fmt.Sprintf("%s.chapters[%d]", field, ch),
					fmt.Sprintf("%s %d has no verses", src.Name, ch+1),
				)
			}
		}

		b := &Book{
			Name:          src.Name,
			OSIS:          src.OSIS,
			Abbreviations: append([]string(nil), src.Abbreviations...),
			Chapters:      append([]int(nil), src.Chapters...),
		}

		if b.OSIS != "" {
			key := fold.String(b.OSIS)
			if prev, dup := c.byOSIS[key]; dup {
				return nil, errors.NewValidation(field+".osis",
					fmt.Sprintf("OSIS ID %q already used by %s", b.OSIS, prev.Name))
			}
			c.byOSIS[key] = b
		}

		c.books = append(c.books, b)
		for _, spelling := range append([]string{b.Name}, b.Abbreviations...) {
			if spelling == "" {
				continue
			}
			c.candidates = append(c.candidates, candidate{
				book:   b,
				folded: fold.String(spelling),
				runes:  utf8.RuneCountInString(spelling),
			})
		}
	}

	return c, nil
}

// Books returns the books in declaration order. The slice is a copy; the
// books themselves must be treated as read-only.
func (c *Corpus) Books() []*Book {
	return append([]*Book(nil), c.books...)
}

// Len returns the number of books.
func (c *Corpus) Len() int {
	return len(c.books)
}

// FindBook resolves the book that text starts with.
//
// A book matches when text begins with its name or one of its abbreviations,
// compared case-insensitively, and the match ends on a word boundary: the
// next character, if any, is not an ASCII letter, digit or underscore, so
// "Johnathan" does not match "John". Names are tried before abbreviations
// and the first matching book in declaration order wins.
//
// The returned prefix is the matched portion of text, so text[len(prefix):]
// is the remainder after the book.
func (c *Corpus) FindBook(text string) (*Book, string, bool) {
	fold := cases.Fold()
	prefixes := make(map[int]string)

	for _, cand := range c.candidates {
		prefix, ok := prefixes[cand.runes]
		if !ok {
			prefix, ok = runePrefix(text, cand.runes)
			if !ok {
				continue
			}
			prefixes[cand.runes] = prefix
		}
		if fold.String(prefix) != cand.folded {
			continue
		}
		if next, _ := utf8.DecodeRuneInString(text[len(prefix):]); len(prefix) < len(text) && isWordRune(next) {
			continue
		}
		return cand.book, prefix, true
	}
	return nil, "", false
}

// BookByOSIS looks up a book by OSIS ID, ignoring case.
func (c *Corpus) BookByOSIS(id string) (*Book, bool) {
	b, ok := c.byOSIS[cases.Fold().String(id)]
	return b, ok
}

// BookByName returns the book whose canonical name equals name, ignoring case.
func (c *Corpus) BookByName(name string) (*Book, bool) {
	for _, b := range c.books {
		if strings.EqualFold(b.Name, name) {
			return b, true
		}
	}
	return nil, false
}

// runePrefix returns the first n runes of s, or false if s is shorter.
func runePrefix(s string, n int) (string, bool) {
	i := 0
	for count := 0; count < n; count++ {
		if i >= len(s) {
			return "", false
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i], true
}

// isWordRune mirrors the \w class of a non-Unicode regular expression.
func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
