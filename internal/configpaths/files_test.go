package configpaths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigCandidatePathsUserPathRouting(t *testing.T) {
	jsonPaths, yamlPaths, tomlPaths := ConfigCandidatePaths("custom.yaml")
	assert.Equal(t, "custom.yaml", yamlPaths[0])
	assert.NotContains(t, jsonPaths, "custom.yaml")
	assert.NotContains(t, tomlPaths, "custom.yaml")

	jsonPaths, _, _ = ConfigCandidatePaths("custom.conf")
	assert.Equal(t, "custom.conf", jsonPaths[0])
}

func TestConfigCandidatePathsIncludeWorkingDir(t *testing.T) {
	jsonPaths, yamlPaths, tomlPaths := ConfigCandidatePaths("")

	var found bool
	for _, p := range jsonPaths {
		if filepath.Base(p) == "sdkgen.json" {
			found = true
		}
	}
	assert.True(t, found)
	assert.NotEmpty(t, yamlPaths)
	assert.NotEmpty(t, tomlPaths)
}

func TestDefaultNamedConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	p, err := DefaultNamedConfigPath("generate", "toml")
	assert.NoError(t, err)
	assert.Equal(t, "generate.toml", filepath.Base(p))
	assert.Contains(t, p, "sdkgen")
}
