// Package errors provides the error types shared by the sermonref packages.
//
// Reference rejections live in core/ref; the types here describe failures
// around them: corpus files that cannot be read or parsed, corpus data that
// breaks its invariants, and formats the loader does not know.
package errors

import (
	"errors"
	"fmt"
)

// Sentinels every typed error below unwraps to, unless it carries a cause.
var (
	// ErrNotFound: a book, corpus file or config file does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput: a reference or a corpus document is malformed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupported: a corpus format or driver this build cannot handle.
	ErrUnsupported = errors.New("unsupported")
)

// NotFoundError names what was looked up and missed.
type NotFoundError struct {
	Resource string // "book", "corpus", "config"
	ID       string
	Err      error
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Resource + " not found"
	}
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrNotFound
}

// ValidationError reports corpus data that breaks an invariant, such as a
// book without chapters or two books sharing an OSIS ID.
type ValidationError struct {
	Field   string // e.g. "books[3].chapters"
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid corpus: " + e.Message
	}
	return fmt.Sprintf("invalid corpus: %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// IOError wraps a filesystem failure with the operation and path.
type IOError struct {
	Op   string // "open", "read", "create", "close"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError is a corpus or config document that could not be decoded.
// Path is filled in by the loader once the file name is known.
type ParseError struct {
	Format  string // "JSON", "XML", "SQLite", "TOML"
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	where := e.Format
	if e.Path != "" {
		where = fmt.Sprintf("%s %s", e.Format, e.Path)
	}
	return fmt.Sprintf("parse %s: %s", where, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// UnsupportedError reports a feature or format this build does not handle.
type UnsupportedError struct {
	Feature string
	Reason  string
}

func (e *UnsupportedError) Error() string {
	if e.Reason == "" {
		return "unsupported " + e.Feature
	}
	return fmt.Sprintf("unsupported %s: %s", e.Feature, e.Reason)
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupported }

func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func NewIO(op, path string, err error) *IOError {
	return &IOError{Op: op, Path: path, Err: err}
}

// NewParse wraps err; its text becomes the Message.
func NewParse(format, path string, err error) *ParseError {
	pe := &ParseError{Format: format, Path: path, Err: err}
	if err != nil {
		pe.Message = err.Error()
	}
	return pe
}

func NewUnsupported(feature, reason string) *UnsupportedError {
	return &UnsupportedError{Feature: feature, Reason: reason}
}

// Wrapf prefixes err with a formatted context. A nil err stays nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is and As re-export the standard helpers so callers need one import.
func Is(err, target error) bool { return errors.Is(err, target) }

func As(err error, target any) bool { return errors.As(err, target) }
