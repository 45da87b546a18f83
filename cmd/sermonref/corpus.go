package main

import (
	"fmt"

	"github.com/FocuswithJustin/sermonref/core/canon"
	"github.com/FocuswithJustin/sermonref/core/sqlite"
	"github.com/FocuswithJustin/sermonref/internal/logging"
)

// CorpusInfoCmd shows what the active corpus contains.
type CorpusInfoCmd struct {
	JSON bool `name:"json" help:"Output as JSON"`
}

type corpusInfo struct {
	ID       string      `json:"id"`
	Source   string      `json:"source"`
	Books    int         `json:"books"`
	Chapters int         `json:"chapters"`
	Verses   int         `json:"verses"`
	Hash     string      `json:"hash"`
	SQLite   sqlite.Info `json:"sqlite"`
}

func (c *CorpusInfoCmd) Run() error {
	e, err := setup()
	if err != nil {
		return err
	}

	info := corpusInfo{
		ID:     e.corpus.ID,
		Source: e.source,
		Books:  e.corpus.Len(),
		Hash:   e.corpus.Hash(),
		SQLite: sqlite.GetInfo(),
	}
	for _, b := range e.corpus.Books() {
		info.Chapters += b.ChapterCount()
		info.Verses += b.TotalVerses()
	}

	if e.wantJSON(c.JSON) {
		return writeJSON(info)
	}
	fmt.Fprintf(stdout, "ID:       %s\n", info.ID)
	fmt.Fprintf(stdout, "Source:   %s\n", info.Source)
	fmt.Fprintf(stdout, "Books:    %d\n", info.Books)
	fmt.Fprintf(stdout, "Chapters: %d\n", info.Chapters)
	fmt.Fprintf(stdout, "Verses:   %d\n", info.Verses)
	fmt.Fprintf(stdout, "BLAKE3:   %s\n", info.Hash)
	fmt.Fprintf(stdout, "SQLite:   %s (%s)\n", info.SQLite.DriverName, info.SQLite.Package)
	return nil
}

// CorpusExportCmd writes the active corpus to a file. The format follows
// the extension of --out.
type CorpusExportCmd struct {
	Out string `name:"out" short:"o" required:"" help:"Output file (.json, .json.xz, .xml, .sqlite)" type:"path"`
}

func (c *CorpusExportCmd) Run() error {
	e, err := setup()
	if err != nil {
		return err
	}
	if err := canon.Save(c.Out, e.corpus); err != nil {
		return fmt.Errorf("export corpus: %w", err)
	}
	logging.InfoContext(e.ctx, "corpus_exported", "id", e.corpus.ID, "path", c.Out)
	fmt.Fprintf(stdout, "Exported %s (%d books) to %s\n", e.corpus.ID, e.corpus.Len(), c.Out)
	return nil
}
