package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"
)

func TestConfigInitGenerate(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "generate.json")

	cmd := ConfigInit{Command: "generate", Format: "json", Output: dest}
	require.NoError(t, cmd.Run())

	data, err := os.ReadFile(dest)
	require.NoError(t, err)

	var root map[string]any
	require.NoError(t, json.Unmarshal(data, &root))
	assert.Equal(t, "./sdk", root["output"])
	assert.Equal(t, "rust", root["lang"])
}

func TestConfigInitYaml(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "inspect.yaml")

	cmd := ConfigInit{Command: "inspect", Format: "yaml", Output: dest}
	require.NoError(t, cmd.Run())

	data, err := os.ReadFile(dest)
	require.NoError(t, err)

	var root map[string]any
	require.NoError(t, yaml.Unmarshal(data, &root))
	assert.Contains(t, root, "snapshot")
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "generate.json")
	require.NoError(t, os.WriteFile(dest, []byte("{}"), 0o644))

	cmd := ConfigInit{Command: "generate", Format: "json", Output: dest}
	assert.Error(t, cmd.Run())

	cmd.Force = true
	assert.NoError(t, cmd.Run())
}

func TestConfigInitUnknownFormat(t *testing.T) {
	cmd := ConfigInit{Command: "generate", Format: "ini"}
	assert.Error(t, cmd.Run())
}
