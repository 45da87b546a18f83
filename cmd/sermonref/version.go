package main

import (
	"fmt"

	"github.com/FocuswithJustin/sermonref/core/sqlite"
	"github.com/FocuswithJustin/sermonref/internal/config"
)

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	info := sqlite.GetInfo()
	fmt.Fprintf(stdout, "sermonref %s\n", version)
	fmt.Fprintf(stdout, "sqlite driver: %s (%s)\n", info.DriverType, info.Package)
	return nil
}

// ConfigInitCmd writes a commented sample config file.
type ConfigInitCmd struct {
	Path string `arg:"" optional:"" help:"Where to write the file (default: user config path)" type:"path"`
}

func (c *ConfigInitCmd) Run() error {
	path := c.Path
	if path == "" {
		p, err := config.DefaultConfigPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := config.CreateSample(path); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote sample config to %s\n", path)
	return nil
}
