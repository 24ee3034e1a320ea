package services

import (
	"github.com/custodia-labs/countries-cli/internal/core/domain"
	"github.com/custodia-labs/countries-cli/internal/core/ports/driving"
)

// Ensure Explorer implements the interface.
var _ driving.Explorer = (*Explorer)(nil)

// Explorer is the state container for interactive browsing.
//
// It is not safe for concurrent use; the TUI mutates it only from its
// update loop.
type Explorer struct {
	dataset   []domain.Country
	selection domain.Selection
	displayed []domain.Country
}

// NewExplorer creates an explorer with an empty dataset and no selection.
func NewExplorer() *Explorer {
	e := &Explorer{}
	e.recompute()
	return e
}

// SetDataset replaces the full dataset and recomputes the displayed sequence.
func (e *Explorer) SetDataset(countries []domain.Country) {
	e.dataset = countries
	e.recompute()
}

// Dataset returns the full dataset.
func (e *Explorer) Dataset() []domain.Country {
	return e.dataset
}

// Selection returns the current filter selection.
func (e *Explorer) Selection() domain.Selection {
	return e.selection
}

// Displayed returns the filtered and sorted sequence.
func (e *Explorer) Displayed() []domain.Country {
	return e.displayed
}

// SelectContinent sets the continent filter.
func (e *Explorer) SelectContinent(continent string) {
	e.selection = e.selection.WithContinent(continent)
	e.recompute()
}

// SelectSubregion sets the subregion filter.
func (e *Explorer) SelectSubregion(subregion string) {
	e.selection = e.selection.WithSubregion(subregion)
	e.recompute()
}

// SelectRanking sets the ranking mode.
func (e *Explorer) SelectRanking(mode domain.RankingMode) {
	e.selection = e.selection.WithRanking(mode)
	e.recompute()
}

// ToggleAlphabetical flips the alphabetical sort.
func (e *Explorer) ToggleAlphabetical() {
	e.selection = e.selection.ToggleAlphabetical()
	e.recompute()
}

func (e *Explorer) recompute() {
	e.displayed = Apply(e.dataset, e.selection)
}
