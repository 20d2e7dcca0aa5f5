// Package order provides domain entities and business logic for order lifecycle
// management in the fulfillment system. It implements the Order aggregate root
// with its status state machine, append-only history and cancellation rules.
//
// The package includes:
//   - Order: The aggregate root managing identity, transport bindings and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Cargo, Pricing, Contact: Value objects validated at construction
//
// Key business rules:
//   - Orders move pending -> confirmed -> processing -> assigned -> picked-up ->
//     in-transit -> out-for-delivery -> delivered; cancelled, returned and failed
//     are reachable from every non-terminal state
//   - Delivered, cancelled, returned and failed are terminal
//   - Every transition appends an immutable history entry
//   - Cancelling a pending order refunds the full total; later cancellations refund nothing
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
