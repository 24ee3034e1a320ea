package services

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/custodia-labs/countries-cli/internal/core/domain"
)

// Apply runs the filter/sort pipeline over countries.
//
// The steps run in a fixed order: continent filter, else subregion filter,
// then top-N ranking, then alphabetical sort of whatever the ranking left.
// The input slice is never modified and the result is never nil.
func Apply(countries []domain.Country, sel domain.Selection) []domain.Country {
	out := slices.Clone(countries)
	if out == nil {
		out = []domain.Country{}
	}

	switch {
	case sel.Continent != "":
		out = slices.DeleteFunc(out, func(c domain.Country) bool {
			return !c.InContinent(sel.Continent)
		})
	case sel.Subregion != "":
		out = slices.DeleteFunc(out, func(c domain.Country) bool {
			return c.Subregion != sel.Subregion
		})
	}

	if sel.Ranking == domain.RankingPopulation || sel.Ranking == domain.RankingArea {
		out = rank(out, sel.Ranking)
	}

	if sel.Alphabetical {
		sortByName(out)
	}

	return out
}

// rank stable-sorts descending by the mode's metric and keeps the first TopN.
func rank(countries []domain.Country, mode domain.RankingMode) []domain.Country {
	slices.SortStableFunc(countries, func(a, b domain.Country) int {
		return cmp.Compare(b.Metric(mode), a.Metric(mode))
	})
	if len(countries) > domain.TopN {
		countries = countries[:domain.TopN]
	}
	return countries
}

// sortByName stable-sorts by common name using root-locale collation, so
// "Åland Islands" sorts next to "Albania" rather than after "Zambia".
func sortByName(countries []domain.Country) {
	// Collators keep internal buffers and are not safe for concurrent use.
	col := collate.New(language.Und)
	slices.SortStableFunc(countries, func(a, b domain.Country) int {
		return col.CompareString(a.Name, b.Name)
	})
}
