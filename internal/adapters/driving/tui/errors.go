package tui

import "errors"

// ErrMissingCountryService is returned when the country service is not provided.
var ErrMissingCountryService = errors.New("tui: country service is required")

// ErrMissingExplorer is returned when the explorer is not provided.
var ErrMissingExplorer = errors.New("tui: explorer is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
