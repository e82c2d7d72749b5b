package generator

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlayout/sdkgen/internal/codegen/meta"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestGenerateLangUnsupported(t *testing.T) {
	g := New(t.TempDir(), quietLogger())
	err := g.GenerateLang("cobol", &meta.Registry{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported language 'cobol'")
	assert.Contains(t, err.Error(), "rust")
}

func TestGenerateLangCreatesLanguageSubdir(t *testing.T) {
	dir := t.TempDir()
	g := New(dir, quietLogger())
	require.NoError(t, g.GenerateLang("rust", &meta.Registry{}))

	info, err := os.Stat(filepath.Join(dir, "rust", "src", "lib.rs"))
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestGenAll(t *testing.T) {
	dir := t.TempDir()
	g := New(dir, quietLogger())
	require.NoError(t, g.GenAll(&meta.Registry{}))

	_, err := os.Stat(filepath.Join(dir, "rust", "Cargo.toml"))
	assert.NoError(t, err)
}
