package config

import (
	"fmt"

	"github.com/FocuswithJustin/sermonref/internal/validation"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCorpus(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateCorpus() error {
	if c.Corpus.Path == "" {
		return nil
	}
	if err := validation.ValidatePath(c.Corpus.Path); err != nil {
		return fmt.Errorf("corpus.path: %w", err)
	}
	if validation.CorpusFormatFromName(c.Corpus.Path) == validation.FileTypeUnknown {
		return fmt.Errorf("corpus.path must end in .json, .json.xz, .xz, .xml, .sqlite, .sqlite3 or .db (got %q)", c.Corpus.Path)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error (got %q)", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "auto", "json", "text":
	default:
		return fmt.Errorf("logging.format must be auto, json or text (got %q)", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("output.format must be text or json (got %q)", c.Output.Format)
	}
}
