package validation

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestValidateReferenceText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{name: "simple reference", text: "Genesis 1:1-2:3"},
		{name: "book only", text: "Jude"},
		{name: "tab allowed", text: "Genesis\t1"},
		{name: "empty", text: "", wantErr: ErrEmptyReference},
		{name: "blank", text: "   ", wantErr: ErrEmptyReference},
		{name: "too long", text: "Genesis " + strings.Repeat("1", MaxReferenceLength), wantErr: ErrReferenceTooLong},
		{name: "newline", text: "Genesis 1\n2", wantErr: ErrInvalidCharacter},
		{name: "null byte", text: "Genesis\x001", wantErr: ErrInvalidCharacter},
		{name: "invalid utf8", text: "Genesis \xff", wantErr: ErrInvalidCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReferenceText(tt.text)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateReferenceText(%q) = %v, want nil", tt.text, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateReferenceText(%q) = %v, want %v", tt.text, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "relative", path: "corpora/kjv.json"},
		{name: "absolute", path: "/etc/sermonref/kjv.sqlite"},
		{name: "empty", path: "", wantErr: ErrEmptyPath},
		{name: "too long", path: strings.Repeat("a", MaxPathLength+1), wantErr: ErrPathTooLong},
		{name: "null byte", path: "kjv\x00.json", wantErr: ErrInvalidCharacter},
		{name: "control char", path: "kjv\x1b.json", wantErr: ErrInvalidCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if tt.wantErr == nil && err != nil {
				t.Errorf("ValidatePath(%q) = %v, want nil", tt.path, err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePath(%q) = %v, want %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestCorpusFormatFromName(t *testing.T) {
	tests := map[string]FileType{
		"kjv.json":       FileTypeJSON,
		"KJV.JSON":       FileTypeJSON,
		"kjv.json.xz":    FileTypeJSONXZ,
		"kjv.xz":         FileTypeXZ,
		"kjv.xml":        FileTypeXML,
		"kjv.sqlite":     FileTypeSQLite,
		"kjv.sqlite3":    FileTypeSQLite,
		"kjv.db":         FileTypeSQLite,
		"kjv.csv":        FileTypeUnknown,
		"no-extension":   FileTypeUnknown,
		"dir/kjv.tar.gz": FileTypeUnknown,
	}
	for name, want := range tests {
		if got := CorpusFormatFromName(name); got != want {
			t.Errorf("CorpusFormatFromName(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestDetectCorpusFormat(t *testing.T) {
	sqliteHeader := append([]byte("SQLite format 3\x00"), make([]byte, 84)...)
	xzHeader := []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00, 0x00, 0x04}

	tests := []struct {
		name     string
		content  []byte
		filename string
		want     FileType
		wantErr  bool
	}{
		{name: "json object", content: []byte(`{"id":"KJV","books":[]}`), filename: "kjv.json", want: FileTypeJSON},
		{name: "json array with whitespace", content: []byte("\n  [{\"name\":\"Jude\"}]"), filename: "bible.json", want: FileTypeJSON},
		{name: "json with BOM", content: []byte("\xef\xbb\xbf{}"), filename: "kjv.json", want: FileTypeJSON},
		{name: "xml", content: []byte(`<?xml version="1.0"?><corpus/>`), filename: "kjv.xml", want: FileTypeXML},
		{name: "sqlite", content: sqliteHeader, filename: "kjv.sqlite", want: FileTypeSQLite},
		{name: "json.xz", content: xzHeader, filename: "kjv.json.xz", want: FileTypeJSONXZ},
		{name: "bare xz", content: xzHeader, filename: "kjv.xz", want: FileTypeJSONXZ},
		{name: "unknown extension sniffed", content: sqliteHeader, filename: "corpus.bin", want: FileTypeSQLite},
		{name: "json named xml", content: []byte(`{"books":[]}`), filename: "kjv.xml", wantErr: true},
		{name: "sqlite named json", content: sqliteHeader, filename: "kjv.json", wantErr: true},
		{name: "garbage", content: []byte("hello world"), filename: "kjv.json", wantErr: true},
		{name: "empty", content: nil, filename: "kjv.json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectCorpusFormat(bytes.NewReader(tt.content), tt.filename)
			if tt.wantErr {
				if !errors.Is(err, ErrFormatMismatch) {
					t.Errorf("DetectCorpusFormat() error = %v, want ErrFormatMismatch", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectCorpusFormat() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectCorpusFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsLikelyText(t *testing.T) {
	if isLikelyText(nil) {
		t.Error("empty buffer should not be text")
	}
	if !isLikelyText([]byte("Genesis 1:1\n")) {
		t.Error("plain text should be text")
	}
	if isLikelyText([]byte{'a', 0, 'b'}) {
		t.Error("buffer with NUL should not be text")
	}
}
