package common

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

const readmeTemplate = `# Game SDK

This crate is automatically generated from a reflection registry snapshot.
Every struct mirrors the in-memory layout of its host counterpart, so a
pointer handed over by the host can be reinterpreted directly.

## Usage

The crate is freestanding (` + "`#![no_std]`" + `) and expects the host to
provide a ` + "`process_event`" + ` symbol at link time. Method wrappers on
generated classes forward their arguments to the host through it.

Do not edit the generated sources; regenerate from a fresh snapshot instead.
`

func GenerateReadme(logger *slog.Logger, outputDir string) error {
	readmePath := filepath.Join(outputDir, "README.md")

	if err := os.WriteFile(readmePath, []byte(readmeTemplate), 0644); err != nil {
		return fmt.Errorf("write README.md: %w", err)
	}

	logger.Debug("Generated README.md", "path", readmePath)
	return nil
}
