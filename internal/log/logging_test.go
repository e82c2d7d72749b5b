package log

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelTrace, ParseLevel("trace"))
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
}

func TestSetupLoggerWritesFile(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "sdkgen.log")

	logger, closers, err := SetupLogger("debug", logFile)
	require.NoError(t, err)

	logger.Info("snapshot loaded", "objects", 3)
	for _, c := range closers {
		require.NoError(t, c.Close())
	}

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "snapshot loaded")
	assert.Contains(t, string(data), "objects=3")
}

func TestSetupLoggerLevelFilter(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "sdkgen.log")

	logger, closers, err := SetupLogger("warn", logFile)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Warn("visible")
	for _, c := range closers {
		require.NoError(t, c.Close())
	}

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(data), "hidden"))
	assert.Contains(t, string(data), "visible")
}
