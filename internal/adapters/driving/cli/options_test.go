package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsCmd_Output(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"options"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Continents:")
	assert.Contains(t, out, "  North America")
	assert.Contains(t, out, "Subregions:")
	assert.Contains(t, out, "  Eastern Africa")
	assert.Contains(t, out, "population  Top 10 by Population")
	assert.Contains(t, out, "area        Top 10 by Area")
	assert.NotContains(t, out, "All")
}
