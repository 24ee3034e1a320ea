package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/countries-cli/internal/logger"
)

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	cfg := "verbose = true\n\n[api]\nurl = \"http://localhost:9999/all\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(cfg), 0600))

	store, s := loadSettings(dir)

	require.NotNil(t, store)
	assert.Equal(t, "http://localhost:9999/all", s.apiURL)
	assert.True(t, s.verbose)
}

func TestLoadSettings_UnusableDirFallsBack(t *testing.T) {
	var logs bytes.Buffer
	logger.SetOutput(&logs)
	defer logger.SetOutput(os.Stderr)

	// A regular file where the config directory should be.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0600))

	store, s := loadSettings(filepath.Join(blocker, "config"))

	assert.Nil(t, store)
	assert.Equal(t, settings{}, s)
	assert.Contains(t, logs.String(), "[ERROR] loading config")
}

func TestVersionOrDev(t *testing.T) {
	original := version
	defer func() { version = original }()

	version = ""
	assert.Equal(t, "dev", versionOrDev())

	version = "1.4.0"
	assert.Equal(t, "1.4.0", versionOrDev())
}
