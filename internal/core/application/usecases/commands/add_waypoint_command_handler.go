package commands

import (
	"context"
)

// AddWaypointCommandHandler appends waypoints to routes.
type AddWaypointCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewAddWaypointCommandHandler creates a handler for waypoint appends.
func NewAddWaypointCommandHandler(uowFactory RouteUoWFactory) AddWaypointCommandHandler {
	return AddWaypointCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the waypoint append command.
// Returns errs.InvalidTransitionError when the route is already in progress.
func (h AddWaypointCommandHandler) Handle(ctx context.Context, cmd AddWaypointCommand) error {
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

	if _, err = aggregate.AddWaypoint(
		cmd.WaypointID(),
		cmd.Location(),
		cmd.Kind(),
		cmd.PlannedArrival(),
	); err != nil {
		return err
	}

	if err = routeRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
