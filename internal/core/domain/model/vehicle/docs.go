// Package vehicle provides the Vehicle aggregate referenced by the fulfillment
// core. The core is the sole authorized writer of a vehicle's operational
// status and assigned driver; everything else about the vehicle record is
// owned by an external system.
//
// Key business rules:
//   - Only an available vehicle can be assigned to an order
//   - The available -> assigned edge is persisted as a compare-and-swap,
//     serializing concurrent assignment attempts
//   - Completing a trip folds route metrics into the vehicle's lifetime totals
package vehicle
