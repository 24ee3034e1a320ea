// Package domain defines the core business entities for countries.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Country: A read-only record from the country listing
//   - Selection: The user's filter, ranking and sort choices
//   - RankingMode: Top-N ranking by population or area
//   - Option: A labelled choice for the fixed filter controls
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
