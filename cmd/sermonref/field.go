package main

import (
	"strings"

	"github.com/FocuswithJustin/sermonref/core/ref"
	"github.com/FocuswithJustin/sermonref/internal/logging"
	"github.com/FocuswithJustin/sermonref/internal/sermon"
)

// FieldCmd validates a reference entered as separate book and passage
// fields, as on the upload form.
type FieldCmd struct {
	Book    string `name:"book" help:"Book field (e.g. \"1 John\")"`
	Passage string `name:"passage" help:"Passage field (e.g. \"3:16-18\")"`
	JSON    bool   `name:"json" help:"Output as JSON"`
}

func (c *FieldCmd) Run() error {
	e, err := setup()
	if err != nil {
		return err
	}

	input := strings.TrimSpace(c.Book + " " + c.Passage)
	res := checkResult{Input: input}
	p, err := sermon.CheckReference(e.validator, sermon.ReferenceField{Book: c.Book, Passage: c.Passage})
	switch rej, ok := ref.RejectionOf(err); {
	case ok:
		res.Rejection = rej
		logging.ReferenceChecked(e.ctx, input, false, string(rej.Code))
	case err != nil:
		res.Error = err.Error()
		logging.ReferenceChecked(e.ctx, input, false, "")
	default:
		fillResult(&res, p)
		logging.ReferenceChecked(e.ctx, input, true, "")
	}
	return report(e, []checkResult{res}, c.JSON)
}
