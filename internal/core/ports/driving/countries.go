package driving

import (
	"context"

	"github.com/custodia-labs/countries-cli/internal/core/domain"
)

// CountryService provides the country dataset to external actors.
type CountryService interface {
	// All returns the full dataset. The underlying fetch happens at most
	// once per process; after a failed fetch the dataset stays empty and
	// the same error is returned.
	All(ctx context.Context) ([]domain.Country, error)

	// Filter runs the filter/sort pipeline over the full dataset.
	Filter(ctx context.Context, sel domain.Selection) ([]domain.Country, error)
}

// Explorer is the interactive state container behind the TUI.
// Every transition recomputes the displayed sequence from the full
// dataset and the current selection.
type Explorer interface {
	// SetDataset replaces the full dataset.
	SetDataset(countries []domain.Country)

	// Dataset returns the full dataset.
	Dataset() []domain.Country

	// Selection returns the current filter selection.
	Selection() domain.Selection

	// Displayed returns the filtered and sorted sequence.
	Displayed() []domain.Country

	// SelectContinent sets the continent filter, clearing the subregion if non-empty.
	SelectContinent(continent string)

	// SelectSubregion sets the subregion filter, clearing the continent if non-empty.
	SelectSubregion(subregion string)

	// SelectRanking sets the top-N ranking mode.
	SelectRanking(mode domain.RankingMode)

	// ToggleAlphabetical flips the alphabetical sort.
	ToggleAlphabetical()
}
