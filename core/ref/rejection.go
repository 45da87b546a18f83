package ref

import (
	"fmt"

	"github.com/FocuswithJustin/sermonref/core/canon"
	"github.com/FocuswithJustin/sermonref/core/errors"
)

// Reason is a stable rejection code.
type Reason string

const (
	ReasonBookNotFound       Reason = "book_not_found"
	ReasonTooManyDashes      Reason = "too_many_dashes"
	ReasonTooManyColonsStart Reason = "too_many_colons_start"
	ReasonTooManyColonsEnd   Reason = "too_many_colons_end"
	ReasonOutOfRange         Reason = "out_of_range"
	ReasonEndBeforeStart     Reason = "end_before_start"
	ReasonIncomplete         Reason = "incomplete"
	ReasonMalformedOSIS      Reason = "malformed_osis"
)

const (
	invalidReferenceMessage    = "An invalid Bible reference was provided."
	incompleteReferenceMessage = "An incomplete Bible reference was provided."
)

var reasonInfo = map[Reason]string{
	ReasonBookNotFound:       "The provided book could not be found.",
	ReasonTooManyDashes:      "Expected only 1 dash in the reference.",
	ReasonTooManyColonsStart: "Too many colons were found at the beginning of the reference.",
	ReasonTooManyColonsEnd:   "Too many colons were found at the end of the reference.",
	ReasonOutOfRange:         "The provided reference is out of range.",
	ReasonEndBeforeStart:     "The beginning of the reference is larger than the end of the reference.",
	ReasonMalformedOSIS:      "The OSIS reference could not be parsed.",
}

// Rejection explains why a reference was refused. Message is shown to the
// end user; Info says what was wrong and Suggestion, when set, how to fix it.
type Rejection struct {
	Code       Reason `json:"code"`
	Message    string `json:"message"`
	Info       string `json:"info,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func (r *Rejection) Error() string {
	msg := r.Message
	if r.Info != "" {
		msg += " " + r.Info
	}
	if r.Suggestion != "" {
		msg += " " + r.Suggestion
	}
	return msg
}

// Unwrap maps the rejection onto the shared error sentinels.
func (r *Rejection) Unwrap() error {
	if r.Code == ReasonBookNotFound {
		return errors.ErrNotFound
	}
	return errors.ErrInvalidInput
}

// RejectionOf returns the Rejection in err's chain, if any.
func RejectionOf(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

func reject(code Reason) *Rejection {
	return &Rejection{
		Code:    code,
		Message: invalidReferenceMessage,
		Info:    reasonInfo[code],
	}
}

func incomplete() *Rejection {
	return &Rejection{
		Code:       ReasonIncomplete,
		Message:    incompleteReferenceMessage,
		Suggestion: "Please use a complete Bible reference or exclude it entirely.",
	}
}

// outOfRange names the first bound l violates in b.
func outOfRange(b *canon.Book, l Locus) *Rejection {
	r := reject(ReasonOutOfRange)
	switch {
	case !b.ChapterInRange(l.Chapter) && b.ChapterCount() == 1:
		r.Suggestion = fmt.Sprintf("%s has one chapter of %d verses.", b.Name, b.ChapterBound())
	case !b.ChapterInRange(l.Chapter):
		r.Suggestion = fmt.Sprintf("%s has %d chapters.", b.Name, b.ChapterCount())
	case b.VerseCount(l.Chapter) == 0:
		r.Suggestion = fmt.Sprintf("%s has only one chapter.", b.Name)
	default:
		r.Suggestion = fmt.Sprintf("%s %d has %d verses.", b.Name, l.Chapter, b.VerseCount(l.Chapter))
	}
	return r
}
