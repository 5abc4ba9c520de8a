// Package domain defines the core business entities of the ChurchTools CLI.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Person: A member record from the persons endpoint
//   - Household: Persons inferred to share one dwelling
//   - ParsedAddress: Structured form of a free-text address
//   - Appointment / Calendar: Calendar import targets
//   - Song / File: Song database and attachment records
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
