package present

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/countries-cli/internal/core/domain"
)

func TestPopulation(t *testing.T) {
	assert.Equal(t, "33,000,000", Population(33000000))
	assert.Equal(t, "999", Population(999))
	assert.Equal(t, "0", Population(0))
}

func TestArea(t *testing.T) {
	assert.Equal(t, "1,246,700 km²", Area(1246700))
	assert.Equal(t, "0.44 km²", Area(0.44))
	assert.Equal(t, "0 km²", Area(0))
}

func TestNewCard(t *testing.T) {
	c := domain.Country{
		Name:       "Kenya",
		Capitals:   []string{"Nairobi"},
		Population: 53771300,
		Area:       580367,
		Continents: []string{"Africa"},
		Subregion:  "Eastern Africa",
		FlagEmoji:  "🇰🇪",
		Flag:       domain.FlagImage{SVG: "https://flagcdn.com/ke.svg"},
	}

	card := NewCard(c)

	assert.Equal(t, Card{
		Name:       "Kenya",
		Flag:       "🇰🇪",
		FlagURI:    "https://flagcdn.com/ke.svg",
		Capital:    "Nairobi",
		Population: "53,771,300",
		Area:       "580,367 km²",
		Continents: "Africa",
		Subregion:  "Eastern Africa",
	}, card)
	assert.Equal(t, "🇰🇪 Kenya", card.Title())
	assert.Len(t, card.Lines(), 6)
}

func TestNewCard_MissingFields(t *testing.T) {
	card := NewCard(domain.Country{Name: "Antarctica", Continents: []string{"Antarctica"}})

	assert.Equal(t, Placeholder, card.Capital)
	assert.Equal(t, Placeholder, card.Subregion)
	assert.Equal(t, "Antarctica", card.Title())
	assert.Len(t, card.Lines(), 5, "no flag line without a flag image")
}

func TestNewCard_MultipleContinents(t *testing.T) {
	card := NewCard(domain.Country{Name: "Russia", Continents: []string{"Europe", "Asia"}})

	assert.Equal(t, "Europe, Asia", card.Continents)
}

func TestCards(t *testing.T) {
	cards := Cards([]domain.Country{{Name: "A"}, {Name: "B"}})

	assert.Len(t, cards, 2)
	assert.Equal(t, "B", cards[1].Name)
	assert.Empty(t, Cards(nil))
}
