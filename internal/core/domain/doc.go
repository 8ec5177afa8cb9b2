// Package domain defines the core entities for triscore.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Records: A long table of string cells as decoded from a source
//   - Table: A wide country x year table of float values
//   - Exclusion: A country flagged by the keyword scan
//   - Ranking: The composite scores for a target year
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
