package cmd

import (
	"log/slog"

	"github.com/rlayout/sdkgen/internal/codegen/meta"
	"github.com/rlayout/sdkgen/internal/codegen/snapshot"
)

type Inspect struct {
	Snapshot string `arg:"" help:"Path to a reflection registry snapshot (YAML)" type:"existingfile" env:"SDKGEN_SNAPSHOT"`
}

type packageTally struct {
	structs    int
	classes    int
	enums      int
	properties int
	functions  int
}

// Run summarizes a snapshot per package without generating anything.
func (c *Inspect) Run(logger *slog.Logger) error {
	reg, err := snapshot.Load(c.Snapshot)
	if err != nil {
		return err
	}

	tallies := map[*meta.Package]*packageTally{}
	var order []*meta.Package
	tally := func(pkg *meta.Package) *packageTally {
		t, ok := tallies[pkg]
		if !ok {
			t = &packageTally{}
			tallies[pkg] = t
			order = append(order, pkg)
		}
		return t
	}

	for _, obj := range reg.Objects {
		switch o := obj.(type) {
		case *meta.Struct:
			t := tally(o.OwningPackage())
			if o.IsClass {
				t.classes++
			} else {
				t.structs++
			}
			t.properties += len(o.Properties)
			t.functions += len(o.Functions)
		case *meta.Enum:
			tally(o.OwningPackage()).enums++
		}
	}

	for _, pkg := range order {
		t := tallies[pkg]
		logger.Info("Package",
			"package", pkg.Name.Text,
			"structs", t.structs,
			"classes", t.classes,
			"enums", t.enums,
			"properties", t.properties,
			"functions", t.functions)
	}
	logger.Info("Snapshot summary", "packages", len(order), "objects", len(reg.Objects))
	return nil
}
