// Package domain defines the core business entities for clinic billing.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Patient: A person the clinic treats
//   - Service: A billable catalog entry with a price
//   - Bill: Services rendered to a patient, with embedded line items
//   - Money: An amount in minor currency units
//   - Snapshot: The complete persisted state of the store
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
