package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for route aggregates.
type RouteRepository interface {
	// Add persists a new route aggregate to storage.
	Add(ctx context.Context, aggregate *route.Route) error

	// Update persists changes to an existing route aggregate, including its
	// waypoints and recorded track. The update is versioned: it fails with
	// errs.VersionIsInvalidError when the stored version differs from the
	// aggregate's.
	Update(ctx context.Context, aggregate *route.Route) error

	// Get retrieves a route aggregate by its unique identifier.
	// Returns the complete route with its waypoints in sequence order.
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)
}
