// Package present formats countries for display.
// The TUI cards, the list command and the MCP tool all render the
// same fields, so the formatting lives here once.
package present

import (
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/custodia-labs/countries-cli/internal/core/domain"
)

// Placeholder is shown for fields the source left empty.
const Placeholder = "-"

// Card holds the display strings for one country card.
type Card struct {
	Name       string `json:"name"`
	Flag       string `json:"flag,omitempty"`
	FlagURI    string `json:"flag_uri,omitempty"`
	Capital    string `json:"capital"`
	Population string `json:"population"`
	Area       string `json:"area"`
	Continents string `json:"continents"`
	Subregion  string `json:"subregion"`
}

// NewCard formats a country for display.
func NewCard(c domain.Country) Card {
	return Card{
		Name:       c.Name,
		Flag:       c.FlagEmoji,
		FlagURI:    c.Flag.URI(),
		Capital:    orPlaceholder(c.Capital()),
		Population: Population(c.Population),
		Area:       Area(c.Area),
		Continents: orPlaceholder(strings.Join(c.Continents, ", ")),
		Subregion:  orPlaceholder(c.Subregion),
	}
}

// Cards formats every country in order.
func Cards(countries []domain.Country) []Card {
	cards := make([]Card, len(countries))
	for i := range countries {
		cards[i] = NewCard(countries[i])
	}
	return cards
}

// Title returns the card heading: the flag emoji (if any) and the name.
func (c Card) Title() string {
	if c.Flag == "" {
		return c.Name
	}
	return c.Flag + " " + c.Name
}

// Lines returns the labelled body lines of the card.
func (c Card) Lines() []Line {
	lines := []Line{
		{Label: "Capital", Value: c.Capital},
		{Label: "Population", Value: c.Population},
		{Label: "Area", Value: c.Area},
		{Label: "Continent", Value: c.Continents},
		{Label: "Subregion", Value: c.Subregion},
	}
	if c.FlagURI != "" {
		lines = append(lines, Line{Label: "Flag", Value: c.FlagURI})
	}
	return lines
}

// Line is one labelled card field.
type Line struct {
	Label string
	Value string
}

// Population formats a head count with thousands separators.
func Population(n int64) string {
	return humanize.Comma(n)
}

// Area formats square kilometres with thousands separators and a km² suffix.
func Area(km2 float64) string {
	return humanize.Commaf(km2) + " km²"
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
