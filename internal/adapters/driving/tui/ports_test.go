package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/countries-cli/internal/core/domain"
	"github.com/custodia-labs/countries-cli/internal/core/services"
)

// MockCountryService implements driving.CountryService for testing.
type MockCountryService struct {
	AllFunc    func(ctx context.Context) ([]domain.Country, error)
	FilterFunc func(ctx context.Context, sel domain.Selection) ([]domain.Country, error)
	calls      int
}

func (m *MockCountryService) All(ctx context.Context) ([]domain.Country, error) {
	m.calls++
	if m.AllFunc != nil {
		return m.AllFunc(ctx)
	}
	return []domain.Country{}, nil
}

func (m *MockCountryService) Filter(ctx context.Context, sel domain.Selection) ([]domain.Country, error) {
	if m.FilterFunc != nil {
		return m.FilterFunc(ctx, sel)
	}
	return []domain.Country{}, nil
}

func TestNewPorts(t *testing.T) {
	countries := &MockCountryService{}
	explorer := services.NewExplorer()

	ports := NewPorts(countries, explorer)

	require.NotNil(t, ports)
	assert.Equal(t, countries, ports.Countries)
	assert.Equal(t, explorer, ports.Explorer)
}

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ports   *Ports
		wantErr error
	}{
		{
			name:    "all ports set",
			ports:   NewPorts(&MockCountryService{}, services.NewExplorer()),
			wantErr: nil,
		},
		{
			name:    "missing country service",
			ports:   &Ports{Explorer: services.NewExplorer()},
			wantErr: ErrMissingCountryService,
		},
		{
			name:    "missing explorer",
			ports:   &Ports{Countries: &MockCountryService{}},
			wantErr: ErrMissingExplorer,
		},
		{
			name:    "nil ports",
			ports:   nil,
			wantErr: ErrInvalidPorts,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
