package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/countries-cli/internal/adapters/driving/present"
	"github.com/custodia-labs/countries-cli/internal/core/domain"
)

// FilterInput is the input schema for the filter_countries tool.
type FilterInput struct {
	Continent    string `json:"continent,omitempty" jsonschema:"keep countries on this continent, e.g. Africa"`
	Subregion    string `json:"subregion,omitempty" jsonschema:"keep countries in this subregion, e.g. Eastern Africa; cannot be combined with continent"`
	Ranking      string `json:"ranking,omitempty" jsonschema:"top 10 by population or area; empty for no ranking"`
	Alphabetical bool   `json:"alphabetical,omitempty" jsonschema:"sort the result by common name"`
}

// FilterOutput is the output schema for the filter_countries tool.
type FilterOutput struct {
	Countries []present.Card `json:"countries"`
	Count     int            `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "filter_countries",
		Description: "Filter the world's countries by continent or subregion, optionally keep the top 10 by population or area, and sort by name",
	}, s.handleFilter)
}

// handleFilter handles the filter_countries tool invocation.
func (s *Server) handleFilter(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FilterInput,
) (*mcp.CallToolResult, FilterOutput, error) {
	sel, err := input.selection()
	if err != nil {
		return nil, FilterOutput{}, err
	}

	countries, err := s.ports.Countries.Filter(ctx, sel)
	if err != nil {
		return nil, FilterOutput{}, err
	}

	return nil, FilterOutput{
		Countries: present.Cards(countries),
		Count:     len(countries),
	}, nil
}

// selection converts the tool input into a validated selection.
func (in FilterInput) selection() (domain.Selection, error) {
	mode, err := domain.ParseRankingMode(in.Ranking)
	if err != nil {
		return domain.Selection{}, err
	}

	sel := domain.Selection{
		Continent:    in.Continent,
		Subregion:    in.Subregion,
		Ranking:      mode,
		Alphabetical: in.Alphabetical,
	}
	if err := sel.Validate(); err != nil {
		return domain.Selection{}, err
	}
	return sel, nil
}
