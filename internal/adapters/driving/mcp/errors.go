// Package mcp provides an MCP (Model Context Protocol) server adapter for countries.
// It lets AI assistants run the country filter pipeline and read the filter options.
package mcp

import "errors"

// ErrMissingCountryService is returned when the country service is not provided.
var ErrMissingCountryService = errors.New("mcp: country service is required")
