package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrOptimizeRouteCommandIsNotConstructed = errors.New(
	"OptimizeRouteCommand must be created via NewOptimizeRouteCommand constructor",
)

// OptimizeRouteCommand represents a request to reorder a route's waypoints
// and recompute its estimated metrics.
type OptimizeRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewOptimizeRouteCommand creates a command to optimize a route.
func NewOptimizeRouteCommand(routeID kernel.UUID) (OptimizeRouteCommand, error) {
	cmd := OptimizeRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRouteID(routeID); err != nil {
		return OptimizeRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OptimizeRouteCommand) Validate() error {
	return c.guard.Validate(ErrOptimizeRouteCommandIsNotConstructed)
}

// RouteID returns the target route identifier.
func (c OptimizeRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c *OptimizeRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}
