package mcp

import (
	"context"

	"github.com/custodia-labs/countries-cli/internal/core/domain"
	"github.com/custodia-labs/countries-cli/internal/core/services"
)

// mockCountryService is a mock implementation of driving.CountryService.
// Filter runs the real pipeline over countries so tool output is realistic.
type mockCountryService struct {
	countries []domain.Country
	err       error
	lastSel   domain.Selection
}

func (m *mockCountryService) All(_ context.Context) ([]domain.Country, error) {
	if m.err != nil {
		return []domain.Country{}, m.err
	}
	return m.countries, nil
}

func (m *mockCountryService) Filter(_ context.Context, sel domain.Selection) ([]domain.Country, error) {
	m.lastSel = sel
	if m.err != nil {
		return []domain.Country{}, m.err
	}
	return services.Apply(m.countries, sel), nil
}

func sampleCountries() []domain.Country {
	return []domain.Country{
		{
			Name: "Chad", Capitals: []string{"N'Djamena"}, Population: 16425859, Area: 1284000,
			Continents: []string{"Africa"}, Subregion: "Middle Africa", FlagEmoji: "🇹🇩",
		},
		{
			Name: "Angola", Capitals: []string{"Luanda"}, Population: 32866268, Area: 1246700,
			Continents: []string{"Africa"}, Subregion: "Middle Africa", FlagEmoji: "🇦🇴",
		},
		{
			Name: "India", Capitals: []string{"New Delhi"}, Population: 1380004385, Area: 3287590,
			Continents: []string{"Asia"}, Subregion: "Southern Asia", FlagEmoji: "🇮🇳",
		},
		{
			Name: "Canada", Capitals: []string{"Ottawa"}, Population: 38005238, Area: 9984670,
			Continents: []string{"North America"}, Subregion: "North America", FlagEmoji: "🇨🇦",
		},
	}
}
