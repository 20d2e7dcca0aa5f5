package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Builds the cargo, pricing and contact value objects, creates the order in
// pending status and persists it transactionally.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence; publisher may be
// nil to disable event emission.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order creation command.
// The order receives generated order and tracking numbers and starts in
// pending status with a seeded history entry.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	contact, err := order.NewContact(cmd.ContactName(), cmd.ContactPhone())
	if err != nil {
		return err
	}

	cargo, err := order.NewCargo(cmd.TotalWeight(), cmd.TotalVolume(), cmd.DeclaredValue())
	if err != nil {
		return err
	}

	pricing, err := order.NewPricing(cmd.TotalAmount(), cmd.Currency())
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.VendorID(),
		cmd.PickupLocation(),
		cmd.DeliveryLocation(),
		cmd.PickupWindow(),
		cmd.DeliveryWindow(),
		contact,
		cargo,
		pricing,
	)
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

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, "order.created", "order", aggregate.ID(), map[string]any{
		"orderNumber":    aggregate.OrderNumber(),
		"trackingNumber": aggregate.TrackingNumber(),
		"status":         aggregate.Status().String(),
	})

	return nil
}
