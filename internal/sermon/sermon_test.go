package sermon

import (
	"testing"

	"github.com/FocuswithJustin/sermonref/core/ref"
)

func TestCheckReference(t *testing.T) {
	v := ref.Default()

	tests := []struct {
		name     string
		field    ReferenceField
		wantRef  string
		wantCode ref.Reason
	}{
		{name: "empty field", field: ReferenceField{}},
		{name: "blank field", field: ReferenceField{Book: " ", Passage: "\t"}},
		{name: "complete", field: ReferenceField{Book: "Genesis", Passage: "1:1-2:3"}, wantRef: "Genesis 1:1-2:3"},
		{name: "abbreviated", field: ReferenceField{Book: "Jn", Passage: "3:16"}, wantRef: "John 3:16"},
		{name: "missing passage", field: ReferenceField{Book: "Genesis"}, wantCode: ref.ReasonIncomplete},
		{name: "missing book", field: ReferenceField{Passage: "1:1"}, wantCode: ref.ReasonIncomplete},
		{name: "unknown book", field: ReferenceField{Book: "Hezekiah", Passage: "1"}, wantCode: ref.ReasonBookNotFound},
		{name: "out of range", field: ReferenceField{Book: "Jude", Passage: "2:1"}, wantCode: ref.ReasonOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckReference(v, tt.field)
			if tt.wantCode != "" {
				rej, ok := ref.RejectionOf(err)
				if !ok {
					t.Fatalf("CheckReference() error = %v, want rejection %s", err, tt.wantCode)
				}
				if rej.Code != tt.wantCode {
					t.Errorf("Code = %s, want %s", rej.Code, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("CheckReference() error = %v", err)
			}
			if tt.wantRef == "" {
				if got != nil {
					t.Errorf("CheckReference() = %v, want nil for an empty field", got)
				}
				return
			}
			if got == nil || got.String() != tt.wantRef {
				t.Errorf("CheckReference() = %v, want %s", got, tt.wantRef)
			}
		})
	}
}
