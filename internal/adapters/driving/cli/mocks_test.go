package cli

import (
	"context"

	"github.com/spf13/pflag"

	"github.com/custodia-labs/countries-cli/internal/core/domain"
	"github.com/custodia-labs/countries-cli/internal/core/services"
	"github.com/custodia-labs/countries-cli/internal/logger"
)

// mockCountryService implements driving.CountryService for CLI tests.
// Filter runs the real pipeline so command output is realistic.
type mockCountryService struct {
	countries   []domain.Country
	err         error
	filterCalls int
	lastSel     domain.Selection
}

func (m *mockCountryService) All(_ context.Context) ([]domain.Country, error) {
	if m.err != nil {
		return []domain.Country{}, m.err
	}
	return m.countries, nil
}

func (m *mockCountryService) Filter(_ context.Context, sel domain.Selection) ([]domain.Country, error) {
	m.filterCalls++
	m.lastSel = sel
	if m.err != nil {
		return []domain.Country{}, m.err
	}
	return services.Apply(m.countries, sel), nil
}

func testCountries() []domain.Country {
	return []domain.Country{
		{
			Name: "Chad", Capitals: []string{"N'Djamena"}, Population: 16425859, Area: 1284000,
			Continents: []string{"Africa"}, Subregion: "Middle Africa", FlagEmoji: "🇹🇩",
			Flag: domain.FlagImage{SVG: "https://flagcdn.com/td.svg"},
		},
		{
			Name: "Angola", Capitals: []string{"Luanda"}, Population: 32866268, Area: 1246700,
			Continents: []string{"Africa"}, Subregion: "Middle Africa", FlagEmoji: "🇦🇴",
		},
		{
			Name: "Kenya", Capitals: []string{"Nairobi"}, Population: 53771300, Area: 580367,
			Continents: []string{"Africa"}, Subregion: "Eastern Africa", FlagEmoji: "🇰🇪",
		},
		{
			Name: "India", Capitals: []string{"New Delhi"}, Population: 1380004385, Area: 3287590,
			Continents: []string{"Asia"}, Subregion: "Southern Asia", FlagEmoji: "🇮🇳",
		},
	}
}

// setupTestServices installs a mock country service and returns a cleanup
// function that restores package state, including flag values left over
// from earlier command executions.
func setupTestServices() (*mockCountryService, func()) {
	svc := &mockCountryService{countries: testCountries()}
	originalService := countryService
	originalStore := configStore
	originalConfigErr := configErr
	countryService = svc

	return svc, func() {
		countryService = originalService
		configStore = originalStore
		configErr = originalConfigErr
		resetFlags()
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		logger.SetVerbose(false)
	}
}

// resetFlags restores every command flag to its default.
func resetFlags() {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(reset)
	}
}
