package commands

import (
	"context"
)

// OptimizeRouteCommandHandler reorders route waypoints.
// The reordering is a fixed point: optimizing twice yields the same sequence
// and the same computed metrics.
type OptimizeRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewOptimizeRouteCommandHandler creates a handler for route optimization.
func NewOptimizeRouteCommandHandler(uowFactory RouteUoWFactory) OptimizeRouteCommandHandler {
	return OptimizeRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the optimization command.
// Returns errs.InvalidTransitionError when the route is in progress or
// terminal.
func (h OptimizeRouteCommandHandler) Handle(ctx context.Context, cmd OptimizeRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routeRepo := uow.RouteRepository()
	aggregate, err := routeRepo.Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	if err = aggregate.Optimize(); err != nil {
		return err
	}

	if err = routeRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
