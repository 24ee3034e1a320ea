// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/countries-cli/internal/core/domain"
)

// CountriesLoaded carries the outcome of the one-time dataset fetch.
// On failure Countries is empty and Err is set; the error has already
// been logged by the service.
type CountriesLoaded struct {
	Countries []domain.Country
	Err       error
}

// SelectionChanged is sent after any control changes the filter selection.
type SelectionChanged struct {
	Selection domain.Selection
	Displayed int
}
