// Package route provides domain entities and business logic for route lifecycle
// management in the fulfillment system. It implements the Route aggregate root
// with waypoint progression, location tracking and derived metrics.
//
// The package includes:
//   - Route: The aggregate root managing waypoints, tracking path and metrics
//   - Waypoint: A single stop with its own arrival/completion sub-state
//   - Status, Kind, WaypointStatus: closed enumerations with validated transitions
//
// Key business rules:
//   - Routes move draft -> planned -> assigned -> in-progress -> completed,
//     with paused and cancelled reachable from non-terminal states
//   - Waypoints keep a contiguous 1-based order index and cannot be added while
//     the route is in progress
//   - Optimize performs a stable partition by waypoint kind (pickups, then
//     deliveries, then the rest) and is a fixed point on repeated application
//   - Actual duration and delay are computed once, at completion
//   - The embedded tracking path is bounded by a retention cap
package route
