package cmd

import (
	"log/slog"

	"github.com/rlayout/sdkgen/internal/codegen/generator"
	"github.com/rlayout/sdkgen/internal/codegen/snapshot"
)

type Generate struct {
	Snapshot string `arg:"" help:"Path to a reflection registry snapshot (YAML)" type:"existingfile" env:"SDKGEN_SNAPSHOT"`
	Output   string `help:"Output directory for generated SDKs" default:"./sdk" env:"SDKGEN_OUTPUT"`
	Lang     string `help:"Target language: rust, or 'all'" default:"rust" enum:"rust,all" env:"SDKGEN_LANG"`
}

// Run is called by Kong when the generate command is executed.
func (c *Generate) Run(logger *slog.Logger) error {
	logger.Info("Starting SDK generation", "snapshot", c.Snapshot, "output", c.Output, "lang", c.Lang)

	reg, err := snapshot.Load(c.Snapshot)
	if err != nil {
		return err
	}

	gen := generator.New(c.Output, logger)
	if c.Lang == "all" {
		return gen.GenAll(reg)
	}
	return gen.GenerateLang(c.Lang, reg)
}
