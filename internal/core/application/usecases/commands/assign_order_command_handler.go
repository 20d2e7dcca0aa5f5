package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// AssignOrderCommandHandler orchestrates the atomic Order/Vehicle/Route
// binding. The domain rules live in services.AssignmentService; the handler
// supplies the aggregates and the transaction.
//
// The serialization point is the vehicle write: VehicleRepository.Book only
// succeeds while the stored row is still available, so of two concurrent
// assignments targeting the same vehicle at most one commits and the other
// fails with errs.VehicleUnavailableError, leaving every aggregate unchanged.
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewAssignOrderCommandHandler creates a handler for order assignment.
func NewAssignOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the assignment command.
// Order, vehicle and optional route mutations commit as one unit; if any
// write fails the transaction rolls back and nothing is persisted.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	vehicleRepo := uow.VehicleRepository()
	routeRepo := uow.RouteRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	v, err := vehicleRepo.Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	var rt *route.Route
	if cmd.RouteID() != nil {
		if rt, err = routeRepo.Get(ctx, *cmd.RouteID()); err != nil {
			return err
		}
	}

	if err = services.NewAssignmentService().Assign(aggregate, v, rt, cmd.DriverID()); err != nil {
		return err
	}

	if err = vehicleRepo.Book(ctx, v); err != nil {
		return err
	}

	if rt != nil {
		if err = routeRepo.Update(ctx, rt); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, "order.assigned", "order", aggregate.ID(), map[string]any{
		"driverId":  cmd.DriverID().String(),
		"vehicleId": cmd.VehicleID().String(),
	})

	return nil
}
