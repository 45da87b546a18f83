package canon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/sermonref/core/errors"
	"github.com/FocuswithJustin/sermonref/core/sqlite"
	"github.com/FocuswithJustin/sermonref/internal/validation"
)

// Load reads a corpus file. The format is detected from the file's leading
// bytes and checked against its extension: .json, .json.xz, .xml, or
// .sqlite/.sqlite3/.db. Bare-array JSON files and files without an ID take
// the file name (without extensions) as corpus ID.
func Load(path string) (*Corpus, error) {
	if err := validation.ValidatePath(path); err != nil {
		return nil, fmt.Errorf("corpus path: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFound("corpus", path)
		}
		return nil, errors.NewIO("open", path, err)
	}
	defer f.Close()

	format, err := validation.DetectCorpusFormat(f, path)
	if err != nil {
		return nil, errors.Wrapf(err, "corpus %s", path)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, errors.NewIO("seek", path, err)
	}

	fallbackID := baseID(path)
	var c *Corpus
	switch format {
	case validation.FileTypeJSON:
		c, err = ReadJSON(bufio.NewReader(f), fallbackID)
	case validation.FileTypeJSONXZ:
		xzr, xerr := xz.NewReader(bufio.NewReader(f))
		if xerr != nil {
			return nil, errors.NewParse("xz", path, xerr)
		}
		c, err = ReadJSON(xzr, fallbackID)
	case validation.FileTypeXML:
		c, err = ReadXML(bufio.NewReader(f), fallbackID)
	case validation.FileTypeSQLite:
		c, err = loadSQLiteFile(path, fallbackID)
	default:
		return nil, errors.NewUnsupported("corpus format", fmt.Sprintf("%s (%s)", filepath.Base(path), format))
	}
	if err != nil {
		var pe *errors.ParseError
		if errors.As(err, &pe) && pe.Path == "" {
			pe.Path = path
		}
		return nil, err
	}
	return c, nil
}

func loadSQLiteFile(path, fallbackID string) (*Corpus, error) {
	db, err := sqlite.OpenReadOnly(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return LoadSQLite(db, fallbackID)
}

// Save writes c to path in the format named by its extension.
func Save(path string, c *Corpus) (err error) {
	if err := validation.ValidatePath(path); err != nil {
		return fmt.Errorf("corpus path: %w", err)
	}

	format := validation.CorpusFormatFromName(path)
	if format == validation.FileTypeSQLite {
		db, err := sqlite.Open(path)
		if err != nil {
			return err
		}
		defer db.Close()
		return SaveSQLite(db, c)
	}

	var write func(io.Writer, *Corpus) error
	switch format {
	case validation.FileTypeJSON, validation.FileTypeJSONXZ:
		write = WriteJSON
	case validation.FileTypeXML:
		write = WriteXML
	default:
		return errors.NewUnsupported("corpus format", filepath.Base(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.NewIO("create", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.NewIO("close", path, cerr)
		}
	}()

	if format != validation.FileTypeJSONXZ {
		return write(f, c)
	}

	xzw, err := xz.NewWriter(f)
	if err != nil {
		return fmt.Errorf("xz writer: %w", err)
	}
	if err := write(xzw, c); err != nil {
		return err
	}
	if err := xzw.Close(); err != nil {
		return fmt.Errorf("close xz stream: %w", err)
	}
	return nil
}

// baseID strips directory and every extension: "/x/kjv.json.xz" -> "kjv".
func baseID(path string) string {
	name := filepath.Base(path)
	if i := strings.IndexByte(name, '.'); i > 0 {
		name = name[:i]
	}
	return name
}
