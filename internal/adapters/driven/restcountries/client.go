// Package restcountries provides a country source adapter for the
// REST Countries API (https://restcountries.com).
package restcountries

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/custodia-labs/countries-cli/internal/core/domain"
	"github.com/custodia-labs/countries-cli/internal/core/ports/driven"
	"github.com/custodia-labs/countries-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.CountrySource = (*Client)(nil)

// Default configuration values.
const (
	DefaultURL       = "https://restcountries.com/v3.1/all"
	DefaultUserAgent = "countries-cli"

	// maxErrorBody bounds how much of a failed response is kept for the error message.
	maxErrorBody = 512
)

// Config holds configuration for the REST Countries client.
type Config struct {
	// URL is the listing endpoint (default: https://restcountries.com/v3.1/all).
	URL string

	// UserAgent is sent with the request (default: countries-cli).
	UserAgent string

	// HTTPClient performs the request (default: a client with no timeout;
	// cancellation comes from the caller's context).
	HTTPClient *http.Client
}

// Client fetches the country listing over HTTP.
type Client struct {
	client    *http.Client
	url       string
	userAgent string
}

// NewClient creates a new REST Countries client.
func NewClient(cfg Config) *Client {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}

	return &Client{
		client:    cfg.HTTPClient,
		url:       cfg.URL,
		userAgent: cfg.UserAgent,
	}
}

// URL returns the endpoint the client fetches from.
func (c *Client) URL() string {
	return c.url
}

// FetchAll performs one GET for the full listing.
// There is no retry and no partial result: any failure yields a *domain.FetchError.
func (c *Client) FetchAll(ctx context.Context) ([]domain.Country, error) {
	logger.Debug("GET %s", c.url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, http.NoBody)
	if err != nil {
		return nil, &domain.FetchError{Op: "request", Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &domain.FetchError{Op: "request", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if readErr != nil {
			body = []byte("failed to read response")
		}
		return nil, &domain.FetchError{
			Op:     "status",
			Status: resp.StatusCode,
			Err:    fmt.Errorf("unexpected response: %s", string(body)),
		}
	}

	var records []countryRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, &domain.FetchError{Op: "decode", Err: err}
	}

	logger.Debug("Decoded %d records", len(records))

	countries := make([]domain.Country, len(records))
	for i := range records {
		countries[i] = records[i].toDomain()
	}
	return countries, nil
}
