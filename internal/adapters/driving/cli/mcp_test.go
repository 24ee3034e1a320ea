package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPCmd_HasHTTPFlag(t *testing.T) {
	flag := mcpCmd.Flags().Lookup("http")
	require.NotNil(t, flag)
	assert.Equal(t, "", flag.DefValue)
}

func TestMCPCmd_Long(t *testing.T) {
	assert.Contains(t, mcpCmd.Long, "filter_countries")
	assert.Contains(t, mcpCmd.Long, "countries://options")
}

func TestMCPCmd_NoService(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	countryService = nil

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"mcp"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "country service not configured")
}
