// Package sermon describes the sermon-upload workflow around reference
// validation. Publishing, tagging, renaming and roster lookups are provided
// by other services; only their contracts live here. The one concrete piece
// is the reference field check, which calls into core/ref.
package sermon

import (
	"context"

	"github.com/FocuswithJustin/sermonref/core/ref"
)

// TimeOfDay is the service a sermon was preached at.
type TimeOfDay string

const (
	SundayMorning TimeOfDay = "Sunday Morning"
	SundayEvening TimeOfDay = "Sunday Evening"
	OtherService  TimeOfDay = "Other"
)

// ReferenceField is the Scripture reference as submitted on the form: the
// book and the passage arrive as separate fields.
type ReferenceField struct {
	Book    string `json:"book"`
	Passage string `json:"passage"`
}

// Form is a submitted sermon upload.
type Form struct {
	Speaker     string         `json:"speaker"`
	Title       string         `json:"title"`
	Series      string         `json:"series"`
	Reference   ReferenceField `json:"reference"`
	Date        string         `json:"date"` // YYYY-MM-DD
	Time        TimeOfDay      `json:"time"`
	SermonFile  string         `json:"sermonFileName"`
	PictureFile string         `json:"sermonPicName"`
}

// CheckReference validates the reference field of a form. An entirely empty
// field is accepted and yields nil, nil; a field with only one of book or
// passage is rejected as incomplete. Rejections are *ref.Rejection values.
func CheckReference(v *ref.Validator, f ReferenceField) (*ref.ParsedReference, error) {
	return v.ValidateParts(f.Book, f.Passage)
}

// FormValidator checks a whole submission, including its reference field.
type FormValidator interface {
	Validate(ctx context.Context, form Form) error
}

// Roster answers whether speakers and series already exist.
type Roster interface {
	HasSpeaker(ctx context.Context, name string) (bool, error)
	HasSeries(ctx context.Context, name string) (bool, error)
}

// Tagger writes ID3 metadata into the sermon audio file.
type Tagger interface {
	Tag(ctx context.Context, form Form) error
}

// Renamer moves the sermon audio file to its canonical name and returns
// that name.
type Renamer interface {
	Rename(ctx context.Context, form Form) (string, error)
}

// Publisher uploads a tagged sermon to the podcast host and returns the
// published episode's URL.
type Publisher interface {
	Publish(ctx context.Context, form Form, audioPath string) (string, error)
}
