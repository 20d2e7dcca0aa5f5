package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// StartRouteCommandHandler begins route execution.
// The route moves to in-progress and the bound vehicle to in-transit inside
// the same transaction.
type StartRouteCommandHandler struct {
	uowFactory TripUoWFactory
	publisher  ports.EventPublisher
}

// NewStartRouteCommandHandler creates a handler for route starts.
func NewStartRouteCommandHandler(
	uowFactory TripUoWFactory,
	publisher ports.EventPublisher,
) StartRouteCommandHandler {
	return StartRouteCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the route start command.
// Returns errs.InvalidTransitionError unless the route is assigned.
func (h StartRouteCommandHandler) Handle(ctx context.Context, cmd StartRouteCommand) error {
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

	if err = aggregate.Start(cmd.At()); err != nil {
		return err
	}

	if vehicleID := aggregate.VehicleID(); vehicleID != nil {
		vehicleRepo := uow.VehicleRepository()
		v, vErr := vehicleRepo.Get(ctx, *vehicleID)
		if vErr != nil {
			return vErr
		}

		if vErr = v.StartTrip(); vErr != nil {
			return vErr
		}

		if vErr = vehicleRepo.Update(ctx, v); vErr != nil {
			return vErr
		}
	}

	if err = routeRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, "route.started", "route", aggregate.ID(), map[string]any{
		"at": cmd.At(),
	})

	return nil
}
