package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/core/ports"
)

// CreateRouteCommandHandler handles route creation.
// Builds the waypoint entities from the command inputs and persists the route
// in draft status, or planned when waypoints were supplied.
type CreateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateRouteCommandHandler creates a handler for route creation.
func NewCreateRouteCommandHandler(
	uowFactory RouteUoWFactory,
	publisher ports.EventPublisher,
) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the route creation command.
func (h CreateRouteCommandHandler) Handle(ctx context.Context, cmd CreateRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	waypoints := make([]*route.Waypoint, 0, len(cmd.Waypoints()))
	for i, input := range cmd.Waypoints() {
		wp, err := route.NewWaypoint(input.ID, i+1, input.Location, input.Kind, input.PlannedArrival)
		if err != nil {
			return err
		}
		waypoints = append(waypoints, wp)
	}

	aggregate, err := route.NewRoute(cmd.RouteID(), cmd.CreatedBy(), cmd.Schedule(), waypoints)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RouteRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, "route.created", "route", aggregate.ID(), map[string]any{
		"status":    aggregate.Status().String(),
		"waypoints": len(aggregate.Waypoints()),
	})

	return nil
}
