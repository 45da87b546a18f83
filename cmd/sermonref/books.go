package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/sermonref/internal/logging"
)

// BooksCmd lists the books of the active corpus.
type BooksCmd struct {
	JSON bool `name:"json" help:"Output as JSON"`
}

func (c *BooksCmd) Run() error {
	e, err := setup()
	if err != nil {
		return err
	}

	books := e.corpus.Books()
	if e.wantJSON(c.JSON) {
		return writeJSON(books)
	}

	rows := make([][]string, 0, len(books))
	for i, b := range books {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			b.Name,
			b.OSIS,
			strconv.Itoa(b.ChapterCount()),
			strconv.Itoa(b.TotalVerses()),
			strings.Join(b.Abbreviations, ", "),
		})
	}
	fmt.Fprintln(stdout, renderTable(
		[]string{"#", "Name", "OSIS", "Chapters", "Verses", "Abbreviations"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignLeft},
		logging.IsTerminal(stdout),
	))
	return nil
}
