// Package card renders countries as bordered cards laid out in a grid.
package card

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/countries-cli/internal/adapters/driving/present"
	"github.com/custodia-labs/countries-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/countries-cli/internal/core/domain"
)

// Width is the rendered width of one card, border and margin included.
const Width = 40

// innerWidth excludes the two border columns and the right margin.
const innerWidth = Width - 3

// Render draws a single country card.
func Render(s *styles.Styles, c domain.Country) string {
	if s == nil {
		s = styles.DefaultStyles()
	}

	cd := present.NewCard(c)
	lines := make([]string, 0, 8)
	lines = append(lines, s.CardTitle.Render(cd.Title()))
	for _, l := range cd.Lines() {
		lines = append(lines, s.Label.Render(l.Label+":")+" "+s.Normal.Render(l.Value))
	}

	return s.Card.Width(innerWidth).Render(strings.Join(lines, "\n"))
}

// Grid lays the countries out in as many columns as fit in width.
// Every country is rendered; there is no paging.
func Grid(s *styles.Styles, countries []domain.Country, width int) string {
	if len(countries) == 0 {
		return ""
	}

	cols := Columns(width)
	rows := make([]string, 0, len(countries)/cols+1)
	for start := 0; start < len(countries); start += cols {
		end := min(start+cols, len(countries))
		cards := make([]string, 0, end-start)
		for _, c := range countries[start:end] {
			cards = append(cards, Render(s, c))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

// Columns returns how many cards fit side by side in width. Always at least 1.
func Columns(width int) int {
	return max(1, width/Width)
}
