// Package tui provides an interactive terminal user interface for countries.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/countries-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Countries provides the country dataset.
	Countries driving.CountryService

	// Explorer holds the interactive selection state.
	Explorer driving.Explorer
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(countries driving.CountryService, explorer driving.Explorer) *Ports {
	return &Ports{
		Countries: countries,
		Explorer:  explorer,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Countries == nil {
		return ErrMissingCountryService
	}
	if p.Explorer == nil {
		return ErrMissingExplorer
	}
	return nil
}
