package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/countries-cli/internal/adapters/driving/present"
	"github.com/custodia-labs/countries-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for country resources.
	uriScheme = "countries://"
)

// optionsDocument is the JSON body of the options resource.
type optionsDocument struct {
	Continents []domain.Option `json:"continents"`
	Subregions []domain.Option `json:"subregions"`
	Rankings   []string        `json:"rankings"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "options",
		Name:        "options",
		Description: "Continent, subregion and ranking choices accepted by filter_countries",
		MIMEType:    "application/json",
	}, s.handleOptionsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "continents/{continent}",
		Name:        "continent-countries",
		Description: "Countries on a specific continent",
		MIMEType:    "application/json",
	}, s.handleContinentResource)
}

// handleOptionsResource returns the fixed filter choices.
func (s *Server) handleOptionsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	doc := optionsDocument{
		Continents: domain.ContinentOptions(),
		Subregions: domain.SubregionOptions(),
		Rankings: []string{
			domain.RankingPopulation.String(),
			domain.RankingArea.String(),
		},
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling options: %w", err)
	}

	return jsonResult(req.Params.URI, data), nil
}

// handleContinentResource returns the countries on one continent.
func (s *Server) handleContinentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	continent := extractContinent(req.Params.URI)
	if continent == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	countries, err := s.ports.Countries.Filter(ctx, domain.Selection{Continent: continent})
	if err != nil {
		return nil, fmt.Errorf("filtering countries: %w", err)
	}

	data, err := json.MarshalIndent(present.Cards(countries), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling countries: %w", err)
	}

	return jsonResult(req.Params.URI, data), nil
}

func jsonResult(uri string, data []byte) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}
}

// extractContinent extracts the continent from a URI like countries://continents/{continent}.
// Escaped names such as North%20America are decoded.
func extractContinent(uri string) string {
	const prefix = uriScheme + "continents/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	name, err := url.PathUnescape(strings.TrimPrefix(uri, prefix))
	if err != nil || strings.Contains(name, "/") {
		return ""
	}
	return name
}
