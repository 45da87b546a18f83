package canon

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/FocuswithJustin/sermonref/core/errors"
)

const corpusSchema = `
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS books (
	position      INTEGER PRIMARY KEY,
	name          TEXT NOT NULL,
	osis          TEXT NOT NULL DEFAULT '',
	abbreviations TEXT NOT NULL DEFAULT '[]'
);
CREATE TABLE IF NOT EXISTS chapters (
	book_position INTEGER NOT NULL REFERENCES books(position),
	chapter       INTEGER NOT NULL,
	verses        INTEGER NOT NULL,
	PRIMARY KEY (book_position, chapter)
);
`

// SaveSQLite writes c into db, replacing any corpus already stored there.
func SaveSQLite(db *sql.DB, c *Corpus) error {
	if _, err := db.Exec(corpusSchema); err != nil {
		return fmt.Errorf("create corpus schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{`DELETE FROM chapters`, `DELETE FROM books`, `DELETE FROM meta`} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("clear corpus tables: %w", err)
		}
	}

	if _, err := tx.Exec(`INSERT INTO meta (key, value) VALUES ('id', ?), ('hash', ?)`, c.ID, c.Hash()); err != nil {
		return fmt.Errorf("insert meta: %w", err)
	}

	bookStmt, err := tx.Prepare(`INSERT INTO books (position, name, osis, abbreviations) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare book insert: %w", err)
	}
	defer bookStmt.Close()

	chapterStmt, err := tx.Prepare(`INSERT INTO chapters (book_position, chapter, verses) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare chapter insert: %w", err)
	}
	defer chapterStmt.Close()

	for i, b := range c.books {
		abbr, err := json.Marshal(b.Abbreviations)
		if err != nil {
			return fmt.Errorf("encode abbreviations for %s: %w", b.Name, err)
		}
		if _, err := bookStmt.Exec(i+1, b.Name, b.OSIS, string(abbr)); err != nil {
			return fmt.Errorf("insert book %s: %w", b.Name, err)
		}
		for ch, verses := range b.Chapters {
			if _, err := chapterStmt.Exec(i+1, ch+1, verses); err != nil {
				return fmt.Errorf("insert %s %d: %w", b.Name, ch+1, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit corpus: %w", err)
	}
	return nil
}

// LoadSQLite reads a corpus written by SaveSQLite.
func LoadSQLite(db *sql.DB, fallbackID string) (*Corpus, error) {
	id := fallbackID
	var stored string
	switch err := db.QueryRow(`SELECT value FROM meta WHERE key = 'id'`).Scan(&stored); {
	case err == nil:
		if stored != "" {
			id = stored
		}
	case err == sql.ErrNoRows:
	default:
		return nil, errors.NewParse("SQLite", "", err)
	}

	rows, err := db.Query(`SELECT position, name, osis, abbreviations FROM books ORDER BY position`)
	if err != nil {
		return nil, errors.NewParse("SQLite", "", err)
	}
	defer rows.Close()

	var books []*Book
	byPosition := make(map[int]*Book)
	for rows.Next() {
		var (
			position int
			abbr     string
			b        Book
		)
		if err := rows.Scan(&position, &b.Name, &b.OSIS, &abbr); err != nil {
			return nil, errors.NewParse("SQLite", "", err)
		}
		if err := json.Unmarshal([]byte(abbr), &b.Abbreviations); err != nil {
			return nil, &errors.ParseError{
				Format:  "SQLite",
				Message: fmt.Sprintf("abbreviations of %s", b.Name),
				Err:     err,
			}
		}
		books = append(books, &b)
		byPosition[position] = &b
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewParse("SQLite", "", err)
	}

	chapters, err := db.Query(`SELECT book_position, chapter, verses FROM chapters ORDER BY book_position, chapter`)
	if err != nil {
		return nil, errors.NewParse("SQLite", "", err)
	}
	defer chapters.Close()

	for chapters.Next() {
		var position, chapter, verses int
		if err := chapters.Scan(&position, &chapter, &verses); err != nil {
			return nil, errors.NewParse("SQLite", "", err)
		}
		b, ok := byPosition[position]
		if !ok {
			return nil, &errors.ParseError{
				Format:  "SQLite",
				Message: fmt.Sprintf("chapter row for unknown book position %d", position),
			}
		}
		if chapter != len(b.Chapters)+1 {
			return nil, &errors.ParseError{
				Format:  "SQLite",
				Message: fmt.Sprintf("%s: expected chapter %d, found %d", b.Name, len(b.Chapters)+1, chapter),
			}
		}
		b.Chapters = append(b.Chapters, verses)
	}
	if err := chapters.Err(); err != nil {
		return nil, errors.NewParse("SQLite", "", err)
	}

	return New(id, books)
}
