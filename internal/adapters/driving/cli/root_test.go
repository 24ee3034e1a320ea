package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/countries-cli/internal/logger"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "countries", rootCmd.Use)
	assert.True(t, rootCmd.SilenceUsage)
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"list", "tui", "options", "config", "mcp", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestRootCmd_NonTerminalPrintsList(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "India")
	assert.Contains(t, buf.String(), "4 countries")
}

func TestRootCmd_VerboseFlag(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out := new(bytes.Buffer)
	logs := new(bytes.Buffer)
	logger.SetOutput(logs)
	defer logger.SetOutput(os.Stderr)

	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"--verbose", "version"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.True(t, logger.IsVerbose())
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(new(bytes.Buffer)))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, isTerminal(f))
}

func TestSetVersion(t *testing.T) {
	original := version
	defer func() { version = original }()

	SetVersion("")
	assert.Equal(t, original, version)

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)
}

func TestSetCountryService(t *testing.T) {
	svc, cleanup := setupTestServices()
	defer cleanup()

	SetCountryService(nil)
	assert.Nil(t, countryService)

	SetCountryService(svc)
	assert.Equal(t, svc, countryService)
}
