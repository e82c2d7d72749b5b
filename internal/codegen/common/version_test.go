package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVersionDevDefault(t *testing.T) {
	old := Version
	defer func() { Version = old }()

	Version = ""
	v, err := GetVersion()
	require.NoError(t, err)
	assert.Equal(t, "0.0.1-dev", v)
}

func TestGetVersionStripsPrefix(t *testing.T) {
	old := Version
	defer func() { Version = old }()

	Version = "v1.2.3"
	v, err := GetVersion()
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", v)
}

func TestGetVersionRejectsGarbage(t *testing.T) {
	old := Version
	defer func() { Version = old }()

	Version = "nightly"
	_, err := GetVersion()
	assert.Error(t, err)
}

func TestParseVersion(t *testing.T) {
	major, minor, patch := ParseVersion("1.2.3-dirty")
	assert.Equal(t, 1, major)
	assert.Equal(t, 2, minor)
	assert.Equal(t, 3, patch)
}
