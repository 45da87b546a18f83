// Package validation provides input checks applied at the edges of sermonref:
// reference text typed by users, file paths given on the command line, and
// corpus files whose format must be recognised before decoding.
package validation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Limits on user input.
const (
	// MaxReferenceLength bounds the reference text handed to the parser.
	MaxReferenceLength = 256
	// MaxPathLength is the maximum allowed path length.
	MaxPathLength = 4096
)

// Common validation errors.
var (
	ErrEmptyReference   = errors.New("reference cannot be empty")
	ErrReferenceTooLong = errors.New("reference too long")
	ErrPathTooLong      = errors.New("path too long")
	ErrInvalidCharacter = errors.New("invalid character")
	ErrEmptyPath        = errors.New("path cannot be empty")
	ErrFormatMismatch   = errors.New("file content does not match extension")
)

// ValidateReferenceText checks free-form reference text before it is parsed.
// It rejects blank text, text longer than MaxReferenceLength bytes, invalid
// UTF-8 and control characters other than tab.
func ValidateReferenceText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyReference
	}
	if len(text) > MaxReferenceLength {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrReferenceTooLong, len(text), MaxReferenceLength)
	}
	if !utf8.ValidString(text) {
		return fmt.Errorf("%w: invalid UTF-8", ErrInvalidCharacter)
	}
	for _, r := range text {
		if r != '\t' && unicode.IsControl(r) {
			return fmt.Errorf("%w: control character %U", ErrInvalidCharacter, r)
		}
	}
	return nil
}

// ValidatePath performs path validation without requiring a base directory.
// It checks length limits and rejects null bytes and control characters.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}
	if strings.Contains(path, "\x00") {
		return fmt.Errorf("%w: null byte not allowed", ErrInvalidCharacter)
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character not allowed", ErrInvalidCharacter)
		}
	}
	return nil
}

// FileType identifies a corpus file format.
type FileType string

const (
	FileTypeJSON    FileType = "json"
	FileTypeJSONXZ  FileType = "json.xz"
	FileTypeXML     FileType = "xml"
	FileTypeSQLite  FileType = "sqlite"
	FileTypeXZ      FileType = "xz"
	FileTypeUnknown FileType = "unknown"
)

// magicBytes defines magic byte signatures for binary formats.
var magicBytes = []struct {
	fileType FileType
	magic    []byte
}{
	{FileTypeSQLite, []byte("SQLite format 3\x00")},
	{FileTypeXZ, []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}},
}

// CorpusFormatFromName returns the format implied by filename's extension.
func CorpusFormatFromName(filename string) FileType {
	lower := strings.ToLower(filename)
	if strings.HasSuffix(lower, ".json.xz") {
		return FileTypeJSONXZ
	}
	switch filepath.Ext(lower) {
	case ".json":
		return FileTypeJSON
	case ".xml":
		return FileTypeXML
	case ".sqlite", ".sqlite3", ".db":
		return FileTypeSQLite
	case ".xz":
		return FileTypeXZ
	default:
		return FileTypeUnknown
	}
}

// DetectCorpusFormat reads the head of r and returns the corpus format,
// checking that content and extension agree. A file without a known
// extension is accepted on content alone; a plain .xz file is taken to be
// compressed JSON. The reader is consumed; callers should rewind it.
func DetectCorpusFormat(r io.Reader, filename string) (FileType, error) {
	buf := make([]byte, 512)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return FileTypeUnknown, fmt.Errorf("failed to read file header: %w", err)
	}
	buf = buf[:n]

	detected := detectFromContent(buf)
	expected := CorpusFormatFromName(filename)

	switch {
	case detected == FileTypeXZ && (expected == FileTypeJSONXZ || expected == FileTypeXZ || expected == FileTypeUnknown):
		return FileTypeJSONXZ, nil
	case expected == FileTypeUnknown && detected != FileTypeUnknown:
		return detected, nil
	case detected == expected:
		return detected, nil
	case detected == FileTypeUnknown:
		return FileTypeUnknown, fmt.Errorf("%w: extension suggests %s but content is not recognised", ErrFormatMismatch, expected)
	default:
		return FileTypeUnknown, fmt.Errorf("%w: extension suggests %s but content is %s", ErrFormatMismatch, expected, detected)
	}
}

// detectFromContent sniffs binary signatures first, then the first
// significant character of text formats.
func detectFromContent(buf []byte) FileType {
	for _, sig := range magicBytes {
		if bytes.HasPrefix(buf, sig.magic) {
			return sig.fileType
		}
	}
	if !isLikelyText(buf) {
		return FileTypeUnknown
	}

	text := bytes.TrimPrefix(buf, []byte("\xef\xbb\xbf"))
	text = bytes.TrimLeft(text, " \t\r\n")
	if len(text) == 0 {
		return FileTypeUnknown
	}
	switch text[0] {
	case '{', '[':
		return FileTypeJSON
	case '<':
		return FileTypeXML
	default:
		return FileTypeUnknown
	}
}

// isLikelyText checks if the buffer contains likely text content.
func isLikelyText(buf []byte) bool {
	if len(buf) == 0 {
		return false
	}
	if bytes.IndexByte(buf, 0) != -1 {
		return false
	}

	printable := 0
	control := 0
	for _, b := range buf {
		if b >= 0x20 && b <= 0x7e || b == '\t' || b == '\n' || b == '\r' {
			printable++
		} else if b < 0x20 {
			control++
		}
		// UTF-8 lead and continuation bytes are neutral
	}

	return printable > 0 && float64(printable)/float64(printable+control) > 0.95
}
