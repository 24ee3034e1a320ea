package controls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/countries-cli/internal/core/domain"
)

func TestNewDropdown(t *testing.T) {
	d := NewDropdown(nil, "Continent", domain.ContinentOptions())

	require.NotNil(t, d)
	assert.NotNil(t, d.styles)
	assert.Equal(t, "", d.Value(), "first option is All")
	assert.False(t, d.Focused())
}

func TestDropdown_NextPrevWrap(t *testing.T) {
	d := NewDropdown(nil, "Subregion", domain.SubregionOptions())

	d.Next()
	assert.Equal(t, "Southern Asia", d.Value())
	d.Next()
	assert.Equal(t, "Eastern Africa", d.Value())
	d.Next()
	assert.Equal(t, "", d.Value())

	d.Prev()
	assert.Equal(t, "Eastern Africa", d.Value())
}

func TestDropdown_SetValue(t *testing.T) {
	d := NewDropdown(nil, "Continent", domain.ContinentOptions())

	d.SetValue("Europe")
	assert.Equal(t, "Europe", d.Value())

	d.SetValue("Atlantis")
	assert.Equal(t, "Europe", d.Value(), "unknown values are ignored")

	d.SetValue("")
	assert.Equal(t, "", d.Value())
}

func TestDropdown_EmptyOptions(t *testing.T) {
	d := NewDropdown(nil, "Empty", nil)

	d.Next()
	d.Prev()

	assert.Equal(t, "", d.Value())
	assert.Contains(t, d.View(), "Empty:")
}

func TestDropdown_View(t *testing.T) {
	d := NewDropdown(nil, "Continent", domain.ContinentOptions())
	d.SetValue("North America")

	view := d.View()

	assert.Contains(t, view, "Continent:")
	assert.Contains(t, view, "North America")

	d.SetFocused(true)
	assert.True(t, d.Focused())
	assert.Contains(t, d.View(), "North America")
}

func TestButton(t *testing.T) {
	b := NewButton(nil, "Top 10 by Area")

	assert.Equal(t, "Top 10 by Area", b.Label())
	assert.False(t, b.Active())
	assert.Contains(t, b.View(), "Top 10 by Area")
	assert.NotContains(t, b.View(), "✓")

	b.SetActive(true)
	assert.True(t, b.Active())
	assert.Contains(t, b.View(), "✓")

	b.SetFocused(true)
	assert.True(t, b.Focused())
	assert.Contains(t, b.View(), "✓")
}
