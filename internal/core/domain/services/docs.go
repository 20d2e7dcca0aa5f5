// Package services provides domain services that orchestrate business
// operations across multiple aggregates. It implements workflows that don't
// naturally belong to a single aggregate root.
//
// The package includes:
//   - AssignmentService: binds an order to a vehicle, driver and route
//
// Domain services coordinate between aggregates, implementing business logic
// that spans aggregate boundaries following Domain-Driven Design principles.
package services
