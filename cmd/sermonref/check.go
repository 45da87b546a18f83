package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/FocuswithJustin/sermonref/core/ref"
	"github.com/FocuswithJustin/sermonref/internal/logging"
	"github.com/FocuswithJustin/sermonref/internal/validation"
)

// CheckCmd validates free-form references.
type CheckCmd struct {
	References []string `arg:"" optional:"" help:"References to validate (e.g. \"John 3:16\")"`
	File       string   `name:"file" short:"f" help:"Read references from a file, one per line (- for stdin)"`
	JSON       bool     `name:"json" help:"Output as JSON"`
}

// checkResult is the outcome for one input line.
type checkResult struct {
	Input     string         `json:"input"`
	Valid     bool           `json:"valid"`
	Reference string         `json:"reference,omitempty"`
	OSIS      string         `json:"osis,omitempty"`
	Book      string         `json:"book,omitempty"`
	Range     *ref.Range     `json:"range,omitempty"`
	Rejection *ref.Rejection `json:"rejection,omitempty"`
	Error     string         `json:"error,omitempty"`
}

func (c *CheckCmd) Run() error {
	e, err := setup()
	if err != nil {
		return err
	}

	inputs := c.References
	if c.File != "" {
		lines, err := readReferenceLines(c.File)
		if err != nil {
			return err
		}
		inputs = append(inputs, lines...)
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no references given")
	}

	results := make([]checkResult, 0, len(inputs))
	for _, in := range inputs {
		results = append(results, checkOne(e, in, e.validator.Validate))
	}
	return report(e, results, c.JSON)
}

// checkOne runs validate on input and records the outcome.
func checkOne(e *env, input string, validate func(string) (*ref.ParsedReference, error)) checkResult {
	res := checkResult{Input: input}
	if err := validation.ValidateReferenceText(input); err != nil {
		res.Error = err.Error()
		logging.ReferenceChecked(e.ctx, input, false, "")
		return res
	}

	p, err := validate(input)
	if err != nil {
		rej, ok := ref.RejectionOf(err)
		if !ok {
			res.Error = err.Error()
			logging.ReferenceChecked(e.ctx, input, false, "")
			return res
		}
		res.Rejection = rej
		logging.ReferenceChecked(e.ctx, input, false, string(rej.Code))
		return res
	}

	fillResult(&res, p)
	logging.ReferenceChecked(e.ctx, input, true, "")
	return res
}

func fillResult(res *checkResult, p *ref.ParsedReference) {
	res.Valid = true
	if p == nil {
		return
	}
	res.Reference = p.String()
	res.OSIS = p.OSIS()
	res.Book = p.Book.Name
	rng := p.Range
	res.Range = &rng
}

// report prints results and returns errRejected if any were refused.
func report(e *env, results []checkResult, asJSON bool) error {
	if e.wantJSON(asJSON) {
		var v any = results
		if len(results) == 1 {
			v = results[0]
		}
		if err := writeJSON(v); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			fmt.Fprintln(stdout, formatResult(r))
		}
	}

	for _, r := range results {
		if !r.Valid {
			return errRejected
		}
	}
	return nil
}

func formatResult(r checkResult) string {
	switch {
	case r.Error != "":
		return fmt.Sprintf("%s\tERROR\t%s", r.Input, r.Error)
	case r.Rejection != nil:
		line := fmt.Sprintf("%s\tREJECTED\t%s: %s", r.Input, r.Rejection.Code, r.Rejection.Info)
		if r.Rejection.Suggestion != "" {
			line += " " + r.Rejection.Suggestion
		}
		return line
	case r.Reference == "":
		return fmt.Sprintf("%s\tOK\t(empty)", r.Input)
	default:
		return fmt.Sprintf("%s\tOK\t%s\t%s", r.Input, r.Reference, r.OSIS)
	}
}

// readReferenceLines reads one reference per line, skipping blank lines
// and lines starting with #.
func readReferenceLines(path string) ([]string, error) {
	var r io.Reader
	if path == "-" {
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open references: %w", err)
		}
		defer f.Close()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read references: %w", err)
	}
	return lines, nil
}
