package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/ports"
)

// CreateInventoryItemCommandHandler registers new stock items.
// Items start active with zero stock; opening stock arrives through a regular
// inbound movement so the ledger stays complete.
type CreateInventoryItemCommandHandler struct {
	uowFactory InventoryUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateInventoryItemCommandHandler creates a handler for item registration.
func NewCreateInventoryItemCommandHandler(
	uowFactory InventoryUoWFactory,
	publisher ports.EventPublisher,
) CreateInventoryItemCommandHandler {
	return CreateInventoryItemCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the item registration command.
// The SKU is unique: the repository rejects duplicates.
func (h CreateInventoryItemCommandHandler) Handle(ctx context.Context, cmd CreateInventoryItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := inventory.NewItem(
		cmd.ItemID(),
		cmd.SKU(),
		cmd.Name(),
		cmd.Thresholds(),
		cmd.ExpiryDate(),
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

	if err = uow.InventoryRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, "inventory.item-created", "inventory-item", aggregate.ID(), map[string]any{
		"sku": aggregate.SKU(),
	})

	return nil
}
