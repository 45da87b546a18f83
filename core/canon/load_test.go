package canon

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	sterrors "github.com/FocuswithJustin/sermonref/core/errors"
	"github.com/FocuswithJustin/sermonref/internal/validation"
)

func smallCorpus(t *testing.T) *Corpus {
	t.Helper()
	c, err := New("mini", []*Book{
		{Name: "Genesis", OSIS: "Gen", Abbreviations: []string{"Gen", "Gn"}, Chapters: []int{31, 25, 24}},
		{Name: "Jude", OSIS: "Jude", Abbreviations: []string{"Jde"}, Chapters: []int{25}},
		{Name: "Song of Solomon", OSIS: "Song", Chapters: []int{17, 17}},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func assertSameCorpus(t *testing.T, got, want *Corpus) {
	t.Helper()
	if got.ID != want.ID {
		t.Errorf("ID = %q, want %q", got.ID, want.ID)
	}
	gb, wb := got.Books(), want.Books()
	if len(gb) != len(wb) {
		t.Fatalf("len(Books) = %d, want %d", len(gb), len(wb))
	}
	for i := range wb {
		g, w := *gb[i], *wb[i]
		if len(g.Abbreviations) == 0 && len(w.Abbreviations) == 0 {
			g.Abbreviations, w.Abbreviations = nil, nil
		}
		if !reflect.DeepEqual(g, w) {
			t.Errorf("book %d = %+v, want %+v", i, g, w)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	c := smallCorpus(t)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, c); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"abbr"`) {
		t.Errorf("JSON output should use the abbr key:\n%s", buf.String())
	}

	got, err := ReadJSON(&buf, "unused")
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	assertSameCorpus(t, got, c)
	if got.Hash() != c.Hash() {
		t.Error("hash changed across JSON round trip")
	}
}

func TestReadJSONBareArray(t *testing.T) {
	data := `[
		{"name": "Genesis", "abbr": ["Gen"], "chapters": [31, 25]},
		{"name": "Jude", "abbr": [], "chapters": [25]}
	]`

	c, err := ReadJSON(strings.NewReader(data), "bibleData")
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if c.ID != "bibleData" {
		t.Errorf("ID = %q, want fallback %q", c.ID, "bibleData")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if b, _, ok := c.FindBook("gen 2"); !ok || b.Name != "Genesis" {
		t.Error("abbreviation from bare array should match")
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"malformed", `{"books": [`, nil},
		{"wrong type", `{"books": "Genesis"}`, nil},
		{"empty corpus", `{"id": "x", "books": []}`, sterrors.ErrInvalidInput},
		{"zero verses", `[{"name": "Bad", "chapters": [0]}]`, sterrors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.data), "x")
			if err == nil {
				t.Fatal("ReadJSON() expected error")
			}
			if tt.want != nil {
				if !errors.Is(err, tt.want) {
					t.Errorf("error = %v, want %v", err, tt.want)
				}
				return
			}
			var pe *sterrors.ParseError
			if !errors.As(err, &pe) || pe.Format != "JSON" {
				t.Errorf("error = %v, want JSON ParseError", err)
			}
		})
	}
}

func TestHash(t *testing.T) {
	a := smallCorpus(t)
	b := smallCorpus(t)
	if a.Hash() != b.Hash() {
		t.Error("identical corpora should hash identically")
	}
	if len(a.Hash()) != 64 {
		t.Errorf("len(Hash()) = %d, want 64", len(a.Hash()))
	}

	other, err := New("mini", []*Book{{Name: "Genesis", OSIS: "Gen", Chapters: []int{31}}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if other.Hash() == a.Hash() {
		t.Error("different corpora should hash differently")
	}
	if Default().Hash() != Default().Hash() {
		t.Error("Default().Hash() should be stable")
	}
}

func TestXMLRoundTrip(t *testing.T) {
	c := smallCorpus(t)

	var buf bytes.Buffer
	if err := WriteXML(&buf, c); err != nil {
		t.Fatalf("WriteXML() error = %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<?xml") {
		t.Errorf("XML output should start with a header:\n%s", out)
	}
	if !strings.Contains(out, `<book name="Jude" osis="Jude">`) {
		t.Errorf("XML output missing Jude book element:\n%s", out)
	}

	got, err := ReadXML(&buf, "unused")
	if err != nil {
		t.Fatalf("ReadXML() error = %v", err)
	}
	assertSameCorpus(t, got, c)
}

func TestReadXMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not xml", "<corpus"},
		{"wrong root", `<bible><book name="Gen"><chapter verses="3"/></book></bible>`},
		{"bad verses", `<corpus><book name="Gen"><chapter verses="many"/></book></corpus>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadXML(strings.NewReader(tt.data), "x")
			var pe *sterrors.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("ReadXML() error = %v, want ParseError", err)
			}
			if pe.Format != "XML" {
				t.Errorf("Format = %q, want XML", pe.Format)
			}
		})
	}
}

func TestReadXMLFallbackID(t *testing.T) {
	data := `<corpus><book name="Jude"><abbr> Jde </abbr><chapter verses="25"/></book></corpus>`
	c, err := ReadXML(strings.NewReader(data), "local")
	if err != nil {
		t.Fatalf("ReadXML() error = %v", err)
	}
	if c.ID != "local" {
		t.Errorf("ID = %q, want local", c.ID)
	}
	if b, prefix, ok := c.FindBook("Jde 3"); !ok || b.Name != "Jude" || prefix != "Jde" {
		t.Errorf("FindBook(\"Jde 3\") = %v %q %v", b, prefix, ok)
	}
}

func TestSaveAndLoad(t *testing.T) {
	c := smallCorpus(t)
	dir := t.TempDir()

	for _, name := range []string{"mini.json", "mini.json.xz", "mini.xml", "mini.sqlite"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := Save(path, c); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			assertSameCorpus(t, got, c)
			if got.Hash() != c.Hash() {
				t.Error("hash changed across save/load")
			}
		})
	}
}

func TestSaveSQLiteReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.db")
	if err := Save(path, Default()); err != nil {
		t.Fatalf("Save(Default) error = %v", err)
	}
	c := smallCorpus(t)
	if err := Save(path, c); err != nil {
		t.Fatalf("Save(small) error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	assertSameCorpus(t, got, c)
}

func TestLoadFallbackID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bibleData.json")
	data := `[{"name": "Jude", "abbr": ["Jde"], "chapters": [25]}]`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.ID != "bibleData" {
		t.Errorf("ID = %q, want bibleData", c.ID)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
			t.Fatal(err)
		}
		return path
	}

	t.Run("missing", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.json"))
		if !errors.Is(err, sterrors.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Load("")
		if !errors.Is(err, validation.ErrEmptyPath) {
			t.Errorf("error = %v, want ErrEmptyPath", err)
		}
	})

	t.Run("format mismatch", func(t *testing.T) {
		path := write("wrong.xml", `{"books": []}`)
		_, err := Load(path)
		if !errors.Is(err, validation.ErrFormatMismatch) {
			t.Errorf("error = %v, want ErrFormatMismatch", err)
		}
	})

	t.Run("parse error carries path", func(t *testing.T) {
		path := write("broken.json", `{"books": [`)
		_, err := Load(path)
		var pe *sterrors.ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("error = %v, want ParseError", err)
		}
		if pe.Path != path {
			t.Errorf("Path = %q, want %q", pe.Path, path)
		}
	})

	t.Run("unsupported save", func(t *testing.T) {
		err := Save(filepath.Join(dir, "corpus.csv"), Default())
		if !errors.Is(err, sterrors.ErrUnsupported) {
			t.Errorf("error = %v, want ErrUnsupported", err)
		}
	})
}

func TestBaseID(t *testing.T) {
	tests := map[string]string{
		"/x/kjv.json.xz":   "kjv",
		"bibleData.json":   "bibleData",
		"dir/corpus":       "corpus",
		"/a/b/.hidden.xml": ".hidden.xml",
	}
	for in, want := range tests {
		if got := baseID(in); got != want {
			t.Errorf("baseID(%q) = %q, want %q", in, got, want)
		}
	}
}
