package rust

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rlayout/sdkgen/internal/codegen/common"
	"github.com/rlayout/sdkgen/internal/codegen/meta"
)

const (
	maxPackages        = 160
	maxBitfields       = 64
	maxBitfieldMembers = 64
	maxParameters      = 32
)

// The crate is freestanding. The host links the crate into its own address
// space and provides process_event; blueprint-generated classes from every
// package share one module so cross-package references stay simple.
const libPrelude = `#![no_std]
#![allow(dead_code)]
#![allow(non_camel_case_types)]
#![allow(non_snake_case)]
#![allow(non_upper_case_globals)]

pub mod blueprint_generated;

extern "C" {
    pub fn process_event(object: *mut (), name: *const u8, parameters: *mut ());
}

`

const blueprintModuleName = "blueprint_generated"

// Generate emits a Rust crate mirroring the registry's memory layout into
// outputDir. One module per host package, plus a shared module for
// blueprint-generated classes.
func Generate(logger *slog.Logger, outputDir string, reg *meta.Registry) error {
	srcDir := filepath.Join(outputDir, "src")
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		return fmt.Errorf("create src directory: %w", err)
	}

	gen, err := newGenerator(logger, srcDir)
	if err != nil {
		return err
	}
	// The deferred Close restores package scratch slots on the failure
	// paths; on success the explicit Close below already ran and the
	// deferred call is a no-op.
	defer gen.Close()

	if err := gen.run(reg); err != nil {
		return err
	}
	if err := gen.Close(); err != nil {
		return err
	}

	if err := generateProject(logger, outputDir); err != nil {
		return err
	}
	if err := generateGitignore(outputDir); err != nil {
		return err
	}
	if err := common.GenerateReadme(logger, outputDir); err != nil {
		return err
	}

	logger.Info("Generated Rust SDK crate", "output", outputDir, "packages", len(gen.packages))
	return nil
}

type packageRecord struct {
	pkg  *meta.Package
	file *os.File
}

// Generator owns the open output files for one run. Package lookup is
// constant time: each host package's scratch slot holds its index in the
// packages list for the duration of the run and is restored to the
// sentinel on Close.
type Generator struct {
	logger        *slog.Logger
	srcDir        string
	libFile       *os.File
	packages      []packageRecord
	blueprint     *bufio.Writer
	blueprintFile *os.File
	closed        bool
}

func newGenerator(logger *slog.Logger, srcDir string) (*Generator, error) {
	libFile, err := os.Create(filepath.Join(srcDir, "lib.rs"))
	if err != nil {
		return nil, fmt.Errorf("create lib.rs: %w", err)
	}
	if _, err := libFile.WriteString(libPrelude); err != nil {
		libFile.Close()
		return nil, fmt.Errorf("write lib.rs prelude: %w", err)
	}

	blueprintFile, err := os.Create(filepath.Join(srcDir, blueprintModuleName+".rs"))
	if err != nil {
		libFile.Close()
		return nil, fmt.Errorf("create %s.rs: %w", blueprintModuleName, err)
	}

	return &Generator{
		logger:        logger,
		srcDir:        srcDir,
		libFile:       libFile,
		blueprint:     bufio.NewWriter(blueprintFile),
		blueprintFile: blueprintFile,
	}, nil
}

func (g *Generator) run(reg *meta.Registry) error {
	for _, obj := range reg.Objects {
		switch o := obj.(type) {
		case *meta.Struct:
			if err := g.generateStruct(o); err != nil {
				return fmt.Errorf("struct %s: %w", o.FullName(), err)
			}
		case *meta.Enum:
			if err := g.generateEnum(o); err != nil {
				return fmt.Errorf("enum %s: %w", o.FullName(), err)
			}
		}
	}
	return nil
}

func (g *Generator) generateStruct(s *meta.Struct) error {
	if s.IsClass && s.BlueprintGenerated {
		return newStructGen(s, s.Package, g.blueprint, true).generate()
	}

	rec, err := g.getPackage(s.Package)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(rec.file)
	if err := newStructGen(s, s.Package, w, false).generate(); err != nil {
		return err
	}
	return w.Flush()
}

func (g *Generator) generateEnum(e *meta.Enum) error {
	rec, err := g.getPackage(e.Package)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(rec.file)
	if err := writeEnum(w, e); err != nil {
		return err
	}
	return w.Flush()
}

func (g *Generator) getPackage(pkg *meta.Package) (*packageRecord, error) {
	if pkg.Scratch == meta.ScratchSentinel {
		return g.registerPackage(pkg)
	}
	return &g.packages[pkg.Scratch], nil
}

func (g *Generator) registerPackage(pkg *meta.Package) (*packageRecord, error) {
	if len(g.packages) >= maxPackages {
		return nil, ErrMaxPackages
	}

	short := pkg.ShortName()
	file, err := os.Create(filepath.Join(g.srcDir, short+".rs"))
	if err != nil {
		return nil, fmt.Errorf("create module %s: %w", short, err)
	}
	if _, err := fmt.Fprintf(g.libFile, "pub mod %s;\n", short); err != nil {
		file.Close()
		return nil, fmt.Errorf("declare module %s: %w", short, err)
	}

	pkg.Scratch = int32(len(g.packages))
	g.packages = append(g.packages, packageRecord{pkg: pkg, file: file})
	g.logger.Debug("Registered package module", "package", pkg.Name.Text, "module", short)
	return &g.packages[pkg.Scratch], nil
}

// Close restores every borrowed scratch slot, flushes the blueprint module
// and closes all output files. Safe to call twice.
func (g *Generator) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true

	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	for i := range g.packages {
		g.packages[i].pkg.Scratch = meta.ScratchSentinel
		keep(g.packages[i].file.Close())
	}
	keep(g.blueprint.Flush())
	keep(g.blueprintFile.Close())
	keep(g.libFile.Close())
	return firstErr
}
