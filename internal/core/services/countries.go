package services

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/countries-cli/internal/core/domain"
	"github.com/custodia-labs/countries-cli/internal/core/ports/driven"
	"github.com/custodia-labs/countries-cli/internal/core/ports/driving"
	"github.com/custodia-labs/countries-cli/internal/logger"
)

// Ensure CountryService implements the interface.
var _ driving.CountryService = (*CountryService)(nil)

// CountryService loads the country dataset once and serves filtered views of it.
type CountryService struct {
	source driven.CountrySource

	mu        sync.Mutex
	attempted bool
	countries []domain.Country
	err       error
}

// NewCountryService creates a new country service backed by source.
func NewCountryService(source driven.CountrySource) *CountryService {
	return &CountryService{source: source}
}

// All returns the full dataset, fetching it on first use.
//
// The fetch is attempted exactly once and is detached from the caller's
// cancellation. On failure the error is logged, the dataset stays empty
// and every call returns the same error.
func (s *CountryService) All(ctx context.Context) ([]domain.Country, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attempted {
		s.attempted = true
		// The outcome is shared by every later caller, so the first
		// caller going away must not cancel it.
		s.load(context.WithoutCancel(ctx))
	}

	return s.countries, s.err
}

// Filter runs the pipeline over the full dataset.
// An invalid selection is rejected before any fetch happens.
func (s *CountryService) Filter(ctx context.Context, sel domain.Selection) ([]domain.Country, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	countries, err := s.All(ctx)
	if err != nil {
		return []domain.Country{}, err
	}

	logger.Debug("Applying selection: %s", sel)
	out := Apply(countries, sel)
	logger.Debug("Selection kept %d of %d countries", len(out), len(countries))
	return out, nil
}

// load performs the single fetch (caller must hold lock).
func (s *CountryService) load(ctx context.Context) {
	logger.Section("Fetch Countries")

	if s.source == nil {
		s.countries = []domain.Country{}
		s.err = &domain.FetchError{Op: "request", Err: errors.New("no country source configured")}
		logger.Error("%v", s.err)
		return
	}

	countries, err := s.source.FetchAll(ctx)
	if err != nil {
		s.countries = []domain.Country{}
		s.err = err
		logger.Error("%v", err)
		return
	}

	if countries == nil {
		countries = []domain.Country{}
	}
	s.countries = countries
	logger.Info("Loaded %d countries", len(countries))
}
