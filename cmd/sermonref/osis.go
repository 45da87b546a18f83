package main

// OSISCmd converts references to OSIS IDs, or with --from-osis parses OSIS
// IDs back into references.
type OSISCmd struct {
	References []string `arg:"" help:"References, or OSIS IDs with --from-osis"`
	FromOSIS   bool     `name:"from-osis" help:"Treat inputs as OSIS IDs (e.g. Gen.1.1-Gen.2.3)"`
	JSON       bool     `name:"json" help:"Output as JSON"`
}

func (c *OSISCmd) Run() error {
	e, err := setup()
	if err != nil {
		return err
	}

	validate := e.validator.Validate
	if c.FromOSIS {
		validate = e.validator.ValidateOSIS
	}
	results := make([]checkResult, 0, len(c.References))
	for _, in := range c.References {
		results = append(results, checkOne(e, in, validate))
	}
	return report(e, results, c.JSON)
}
