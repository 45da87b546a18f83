package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name    string
		err     *NotFoundError
		wantMsg string
	}{
		{
			name:    "with ID",
			err:     NewNotFound("book", "Hezekiah"),
			wantMsg: "book not found: Hezekiah",
		},
		{
			name:    "without ID",
			err:     &NotFoundError{Resource: "corpus"},
			wantMsg: "corpus not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, ErrNotFound) {
				t.Errorf("errors.Is(%v, ErrNotFound) = false, want true", tt.err)
			}
		})
	}

	t.Run("with underlying error", func(t *testing.T) {
		err := &NotFoundError{Resource: "corpus", ID: "kjv.json", Err: fs.ErrNotExist}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("errors.Is(%v, fs.ErrNotExist) = false, want true", err)
		}
	})
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name    string
		err     *ValidationError
		wantMsg string
	}{
		{
			name:    "with field",
			err:     NewValidation("books[0].chapters", "must not be empty"),
			wantMsg: "invalid corpus: books[0].chapters: must not be empty",
		},
		{
			name:    "without field",
			err:     &ValidationError{Message: "duplicate OSIS ID"},
			wantMsg: "invalid corpus: duplicate OSIS ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, ErrInvalidInput) {
				t.Errorf("errors.Is(%v, ErrInvalidInput) = false, want true", tt.err)
			}
		})
	}
}

func TestIOError(t *testing.T) {
	err := NewIO("open", "/tmp/corpus.json", fs.ErrPermission)
	want := "open /tmp/corpus.json: permission denied"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("IOError should unwrap to its cause")
	}

	noPath := NewIO("read", "", fs.ErrClosed)
	if got := noPath.Error(); got != "read: file already closed" {
		t.Errorf("Error() = %q", got)
	}
}

func TestParseError(t *testing.T) {
	cause := fmt.Errorf("unexpected end of JSON input")
	err := NewParse("JSON", "corpus.json", cause)
	want := "parse JSON corpus.json: unexpected end of JSON input"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, cause) {
		t.Error("ParseError should unwrap to its cause")
	}

	bare := &ParseError{Format: "XML", Message: "no <corpus> root"}
	if got := bare.Error(); got != "parse XML: no <corpus> root" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(bare, ErrInvalidInput) {
		t.Error("ParseError without cause should unwrap to ErrInvalidInput")
	}
}

func TestUnsupportedError(t *testing.T) {
	err := NewUnsupported("corpus format", "extension .csv")
	if got := err.Error(); got != "unsupported corpus format: extension .csv" {
		t.Errorf("Error() = %q", got)
	}
	if !Is(err, ErrUnsupported) {
		t.Error("UnsupportedError should unwrap to ErrUnsupported")
	}
	if got := NewUnsupported("driver", "").Error(); got != "unsupported driver" {
		t.Errorf("Error() = %q", got)
	}
}

func TestWrapf(t *testing.T) {
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}

	base := NewNotFound("book", "Gen")
	wrapped := Wrapf(base, "loading %s", "kjv")
	if got := wrapped.Error(); got != "loading kjv: book not found: Gen" {
		t.Errorf("Wrapf() = %q", got)
	}

	var nf *NotFoundError
	if !As(wrapped, &nf) || nf.ID != "Gen" {
		t.Errorf("As() did not find NotFoundError in %v", wrapped)
	}
	if !Is(wrapped, ErrNotFound) {
		t.Error("Wrapf should preserve the chain")
	}
}
