package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeCorpus(); err != nil {
		return err
	}
	c.normalizeLogging()
	c.normalizeOutput()
	return nil
}

func (c *Config) normalizeCorpus() error {
	var err error
	c.Corpus.Path = strings.TrimSpace(c.Corpus.Path)
	if c.Corpus.Path, err = expandPath(c.Corpus.Path); err != nil {
		return fmt.Errorf("corpus.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Level == "warning" {
		c.Logging.Level = "warn"
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = defaultLogFormat
	}
}

func (c *Config) normalizeOutput() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
}
