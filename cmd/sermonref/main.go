// Command sermonref validates Scripture references the way the sermon upload
// form does, and inspects or exports the reference corpus.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/sermonref/core/canon"
	"github.com/FocuswithJustin/sermonref/core/ref"
	"github.com/FocuswithJustin/sermonref/internal/config"
	"github.com/FocuswithJustin/sermonref/internal/logging"
)

const version = "0.1.0"

// Output streams, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stdin  io.Reader = os.Stdin
)

// CLI defines the command-line interface for sermonref.
var CLI struct {
	// Global flags
	Config    string `name:"config" short:"c" help:"Config file path" type:"path"`
	Corpus    string `name:"corpus" help:"Corpus file (.json, .json.xz, .xml, .sqlite); overrides corpus.path" type:"path"`
	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error)"`
	LogFormat string `name:"log-format" help:"Log format (auto, json, text)"`

	Check     CheckCmd    `cmd:"" help:"Validate free-form references"`
	Field     FieldCmd    `cmd:"" help:"Validate a reference split into book and passage fields"`
	OSIS      OSISCmd     `cmd:"" name:"osis" help:"Convert references to or from OSIS IDs"`
	Books     BooksCmd    `cmd:"" help:"List the books of the corpus"`
	CorpusOps CorpusGroup `cmd:"" name:"corpus" help:"Corpus information and export"`
	ConfigOps ConfigGroup `cmd:"" name:"config" help:"Configuration file helpers"`
	Version   VersionCmd  `cmd:"" help:"Print version information"`
}

// CorpusGroup contains corpus operations.
type CorpusGroup struct {
	Info   CorpusInfoCmd   `cmd:"" help:"Show corpus ID, totals and fingerprint"`
	Export CorpusExportCmd `cmd:"" help:"Write the active corpus to a file"`
}

// ConfigGroup contains configuration helpers.
type ConfigGroup struct {
	Init ConfigInitCmd `cmd:"" help:"Write a sample config file"`
}

// errRejected reports that at least one reference was refused. The
// rejection itself has already been printed.
var errRejected = errors.New("one or more references were rejected")

// env is the state every command runs with: configuration, logging and the
// active corpus.
type env struct {
	ctx       context.Context
	cfg       *config.Config
	corpus    *canon.Corpus
	source    string
	validator *ref.Validator
}

func setup() (*env, error) {
	cfg, path, exists, err := config.Load(CLI.Config)
	if err != nil {
		return nil, err
	}

	levelName := cfg.Logging.Level
	if CLI.LogLevel != "" {
		levelName = CLI.LogLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	formatName := cfg.Logging.Format
	if CLI.LogFormat != "" {
		formatName = CLI.LogFormat
	}
	format, err := logging.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}
	logging.InitLogger(level, format)

	ctx := logging.WithRunID(context.Background(), logging.NewRunID())
	logging.ConfigLoaded(ctx, path, exists)

	e := &env{ctx: ctx, cfg: cfg}

	corpusPath := cfg.Corpus.Path
	if CLI.Corpus != "" {
		corpusPath = CLI.Corpus
	}
	if corpusPath == "" {
		e.corpus = canon.Default()
		e.source = "bundled"
	} else {
		c, err := canon.Load(corpusPath)
		if err != nil {
			logging.ErrorContext(ctx, "corpus_load_failed", "path", corpusPath, "error", err.Error())
			return nil, err
		}
		e.corpus = c
		e.source = corpusPath
	}
	logging.CorpusLoaded(ctx, e.corpus.ID, e.source, e.corpus.Len(), e.corpus.Hash())

	e.validator = ref.NewValidator(e.corpus)
	return e, nil
}

// wantJSON reports whether output should be JSON, either by flag or config.
func (e *env) wantJSON(flag bool) bool {
	return flag || e.cfg.Output.Format == "json"
}

func writeJSON(v any) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("sermonref"),
		kong.Description("Scripture reference validation for sermon uploads"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(ctx)
	if errors.Is(err, errRejected) {
		os.Exit(1)
	}
	ctx.FatalIfErrorf(err)
}
