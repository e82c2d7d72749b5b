package generator

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/rlayout/sdkgen/internal/codegen/generator/rust"
	"github.com/rlayout/sdkgen/internal/codegen/meta"
)

// Generator dispatches a reflection registry to per-language SDK emitters.
type Generator struct {
	outputDir string
	logger    *slog.Logger
}

type LanguageGenerator func(logger *slog.Logger, outputDir string, reg *meta.Registry) error

var generators = map[string]LanguageGenerator{
	"rust": rust.Generate,
}

func New(outputDir string, logger *slog.Logger) *Generator {
	return &Generator{
		outputDir: outputDir,
		logger:    logger,
	}
}

func (g *Generator) GenAll(reg *meta.Registry) error {
	for lang := range generators {
		if err := g.GenerateLang(lang, reg); err != nil {
			return fmt.Errorf("generate %s SDK: %w", lang, err)
		}
	}
	return nil
}

func (g *Generator) GenerateLang(lang string, reg *meta.Registry) error {
	gen, ok := generators[lang]
	if !ok {
		var supported []string
		for k := range generators {
			supported = append(supported, k)
		}
		sort.Strings(supported)
		return fmt.Errorf("unsupported language '%s' (supported: %v)", lang, supported)
	}

	g.logger.Info("Generating SDK", "language", lang)

	outputPath := filepath.Join(g.outputDir, lang)
	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		return fmt.Errorf("failed to create %s output directory: %w", lang, err)
	}

	if err := gen(g.logger, outputPath, reg); err != nil {
		return err
	}

	g.logger.Info("SDK generation complete", "language", lang, "output", outputPath)
	return nil
}
