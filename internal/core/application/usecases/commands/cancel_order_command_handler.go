package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// CancelOrderCommandHandler handles order cancellation.
// Applies the refund rule, records cancellation metadata and releases any
// bound vehicle back to available, all inside one transaction so a cancelled
// order can never keep a vehicle booked.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires a UoWFactory because cancellation may touch the vehicle aggregate.
func NewCancelOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancellation command.
// Returns errs.InvalidTransitionError when the order is already terminal.
// Releasing transport is idempotent: an order without a bound vehicle
// cancels without touching the vehicle repository.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	boundVehicleID := aggregate.VehicleID()

	if err = aggregate.Cancel(cmd.Reason(), cmd.Actor()); err != nil {
		return err
	}

	if aggregate.ReleaseTransport() && boundVehicleID != nil {
		vehicleRepo := uow.VehicleRepository()
		v, vErr := vehicleRepo.Get(ctx, *boundVehicleID)
		if vErr != nil {
			return vErr
		}

		v.Release()
		if vErr = vehicleRepo.Update(ctx, v); vErr != nil {
			return vErr
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	refund := 0.0
	if cancellation := aggregate.Cancellation(); cancellation != nil {
		refund = cancellation.RefundAmount
	}

	publishEvent(ctx, h.publisher, "order.cancelled", "order", aggregate.ID(), map[string]any{
		"reason":       cmd.Reason(),
		"actor":        cmd.Actor(),
		"refundAmount": refund,
	})

	return nil
}
