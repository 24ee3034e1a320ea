package mcp

import (
	"github.com/custodia-labs/countries-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Countries provides the dataset and the filter pipeline.
	Countries driving.CountryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Countries == nil {
		return ErrMissingCountryService
	}
	return nil
}
