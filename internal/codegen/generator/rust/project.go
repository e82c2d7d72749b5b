package rust

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"github.com/rlayout/sdkgen/internal/codegen/common"
)

type cargoPackage struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Edition string `toml:"edition"`
}

type cargoManifest struct {
	Package cargoPackage `toml:"package"`
}

func generateProject(logger *slog.Logger, outputDir string) error {
	version, err := common.GetVersion()
	if err != nil {
		return fmt.Errorf("resolve crate version: %w", err)
	}

	manifest := cargoManifest{
		Package: cargoPackage{
			Name:    "game-sdk",
			Version: version,
			Edition: "2021",
		},
	}
	data, err := toml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("marshal Cargo.toml: %w", err)
	}

	manifestPath := filepath.Join(outputDir, "Cargo.toml")
	if err := os.WriteFile(manifestPath, data, 0o644); err != nil {
		return fmt.Errorf("write Cargo.toml: %w", err)
	}

	logger.Debug("Generated Cargo.toml", "path", manifestPath, "version", version)
	return nil
}

const gitignoreContent = `/target
Cargo.lock
`

func generateGitignore(outputDir string) error {
	path := filepath.Join(outputDir, ".gitignore")
	if err := os.WriteFile(path, []byte(gitignoreContent), 0o644); err != nil {
		return fmt.Errorf("write .gitignore: %w", err)
	}
	return nil
}
