package driven

import (
	"context"

	"github.com/custodia-labs/countries-cli/internal/core/domain"
)

// CountrySource retrieves the full country listing.
// Backed by the REST Countries HTTP API.
type CountrySource interface {
	// FetchAll performs a single request for every country.
	// Failures are returned as *domain.FetchError and are never retried.
	FetchAll(ctx context.Context) ([]domain.Country, error)
}
