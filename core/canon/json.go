package canon

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/sermonref/core/errors"
)

// corpusDocument is the JSON form of a corpus.
type corpusDocument struct {
	ID    string  `json:"id"`
	Books []*Book `json:"books"`
}

// ReadJSON decodes a corpus from r.
//
// Two shapes are accepted: an object {"id": ..., "books": [...]}, and a bare
// array of books as kept in older bibleData.json files. A bare array gets
// fallbackID as its corpus ID.
func ReadJSON(r io.Reader, fallbackID string) (*Corpus, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.NewIO("read", "", err)
	}

	trimmed := bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	trimmed = bytes.TrimLeft(trimmed, " \t\r\n")
	var doc corpusDocument
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &doc.Books); err != nil {
			return nil, errors.NewParse("JSON", "", err)
		}
	} else if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, errors.NewParse("JSON", "", err)
	}

	if doc.ID == "" {
		doc.ID = fallbackID
	}
	return New(doc.ID, doc.Books)
}

// WriteJSON encodes c to w as an indented {"id", "books"} document.
func WriteJSON(w io.Writer, c *Corpus) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c.document()); err != nil {
		return fmt.Errorf("encode corpus: %w", err)
	}
	return nil
}

// Hash returns the hex BLAKE3 digest of the corpus' compact JSON form.
// Corpora with the same ID and the same books in the same order hash
// identically.
func (c *Corpus) Hash() string {
	data, err := json.Marshal(c.document())
	if err != nil {
		// Books contain only strings and ints.
		panic(fmt.Sprintf("canon: marshal corpus: %v", err))
	}
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func (c *Corpus) document() corpusDocument {
	return corpusDocument{ID: c.ID, Books: c.books}
}
