package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// CompleteRouteCommandHandler finishes route execution.
// The route computes its actual duration and delay, the bound vehicle returns
// to available and the route's distance and fuel figures fold into the
// vehicle's aggregate metrics, all inside one transaction.
type CompleteRouteCommandHandler struct {
	uowFactory TripUoWFactory
	publisher  ports.EventPublisher
}

// NewCompleteRouteCommandHandler creates a handler for route completion.
func NewCompleteRouteCommandHandler(
	uowFactory TripUoWFactory,
	publisher ports.EventPublisher,
) CompleteRouteCommandHandler {
	return CompleteRouteCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the route completion command.
// Returns errs.InvalidTransitionError unless the route is in progress.
func (h CompleteRouteCommandHandler) Handle(ctx context.Context, cmd CompleteRouteCommand) error {
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

	if err = aggregate.Complete(cmd.CompletedAt(), cmd.Notes(), cmd.Issues()); err != nil {
		return err
	}

	metrics := aggregate.Metrics()

	if vehicleID := aggregate.VehicleID(); vehicleID != nil {
		vehicleRepo := uow.VehicleRepository()
		v, vErr := vehicleRepo.Get(ctx, *vehicleID)
		if vErr != nil {
			return vErr
		}

		if vErr = v.CompleteTrip(metrics.DistanceKm, metrics.EstimatedFuelCost); vErr != nil {
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

	publishEvent(ctx, h.publisher, "route.completed", "route", aggregate.ID(), map[string]any{
		"actualDuration": metrics.ActualDuration.String(),
		"delay":          metrics.Delay.String(),
	})

	return nil
}
