package canon

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/FocuswithJustin/sermonref/core/errors"
)

// XML layout:
//
//	<corpus id="KJV">
//	  <book name="Genesis" osis="Gen">
//	    <abbr>Gen</abbr>
//	    <chapter verses="31"/>
//	  </book>
//	</corpus>
var (
	corpusExpr  = xpath.MustCompile("/corpus")
	bookExpr    = xpath.MustCompile("book")
	abbrExpr    = xpath.MustCompile("abbr")
	chapterExpr = xpath.MustCompile("chapter")
)

// ReadXML decodes a corpus from its XML form.
func ReadXML(r io.Reader, fallbackID string) (*Corpus, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, errors.NewParse("XML", "", err)
	}

	root := xmlquery.QuerySelector(doc, corpusExpr)
	if root == nil {
		return nil, &errors.ParseError{Format: "XML", Message: "missing <corpus> root element"}
	}

	id := root.SelectAttr("id")
	if id == "" {
		id = fallbackID
	}

	var books []*Book
	for i, node := range xmlquery.QuerySelectorAll(root, bookExpr) {
		b := &Book{
			Name: node.SelectAttr("name"),
			OSIS: node.SelectAttr("osis"),
		}
		for _, a := range xmlquery.QuerySelectorAll(node, abbrExpr) {
			if text := strings.TrimSpace(a.InnerText()); text != "" {
				b.Abbreviations = append(b.Abbreviations, text)
			}
		}
		for j, ch := range xmlquery.QuerySelectorAll(node, chapterExpr) {
			verses, err := strconv.Atoi(strings.TrimSpace(ch.SelectAttr("verses")))
			if err != nil {
				return nil, &errors.ParseError{
					Format:  "XML",
					Message: fmt.Sprintf("book %d (%s) chapter %d: bad verses attribute", i+1, b.Name, j+1),
					Err:     err,
				}
			}
			b.Chapters = append(b.Chapters, verses)
		}
		books = append(books, b)
	}

	return New(id, books)
}

type xmlCorpus struct {
	XMLName xml.Name  `xml:"corpus"`
	ID      string    `xml:"id,attr"`
	Books   []xmlBook `xml:"book"`
}

type xmlBook struct {
	Name     string       `xml:"name,attr"`
	OSIS     string       `xml:"osis,attr,omitempty"`
	Abbr     []string     `xml:"abbr"`
	Chapters []xmlChapter `xml:"chapter"`
}

type xmlChapter struct {
	Verses int `xml:"verses,attr"`
}

// WriteXML encodes c to w in the layout ReadXML accepts.
func WriteXML(w io.Writer, c *Corpus) error {
	doc := xmlCorpus{ID: c.ID}
	for _, b := range c.books {
		xb := xmlBook{Name: b.Name, OSIS: b.OSIS, Abbr: b.Abbreviations}
		for _, n := range b.Chapters {
			xb.Chapters = append(xb.Chapters, xmlChapter{Verses: n})
		}
		doc.Books = append(doc.Books, xb)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write xml header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode corpus: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("write xml: %w", err)
	}
	return nil
}
