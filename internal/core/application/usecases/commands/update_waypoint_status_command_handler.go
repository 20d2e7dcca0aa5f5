package commands

import (
	"context"
)

// UpdateWaypointStatusCommandHandler handles waypoint status transitions.
type UpdateWaypointStatusCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewUpdateWaypointStatusCommandHandler creates a handler for waypoint
// status transitions.
func NewUpdateWaypointStatusCommandHandler(uowFactory RouteUoWFactory) UpdateWaypointStatusCommandHandler {
	return UpdateWaypointStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the waypoint status command.
// Returns route.ErrWaypointNotFound for unknown waypoints and
// errs.InvalidTransitionError for illegal waypoint edges.
func (h UpdateWaypointStatusCommandHandler) Handle(ctx context.Context, cmd UpdateWaypointStatusCommand) error {
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

	if err = aggregate.UpdateWaypointStatus(cmd.WaypointID(), cmd.NewStatus(), cmd.At()); err != nil {
		return err
	}

	if err = routeRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
