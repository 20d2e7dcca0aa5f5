package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles order status transitions.
// Loads the order, applies the transition through the aggregate's state
// machine and persists the result under the order's version check, which
// makes concurrent status updates and cancellation mutually exclusive.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status update command.
// Returns errs.InvalidTransitionError when the requested status is not
// reachable from the current one.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previous := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.NewStatus(), cmd.Actor(), cmd.Notes(), cmd.Location()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, "order.status-changed", "order", aggregate.ID(), map[string]any{
		"from":  previous.String(),
		"to":    aggregate.Status().String(),
		"actor": cmd.Actor(),
	})

	return nil
}
