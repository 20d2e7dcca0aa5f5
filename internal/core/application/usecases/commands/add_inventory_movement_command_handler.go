package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// AddInventoryMovementCommandHandler records stock movements.
// The aggregate checks stock sufficiency and the repository's version check
// makes the check-and-write atomic under concurrency: a racing writer forces
// errs.VersionIsInvalidError and the caller retries on a fresh snapshot.
type AddInventoryMovementCommandHandler struct {
	uowFactory InventoryUoWFactory
	publisher  ports.EventPublisher
}

// NewAddInventoryMovementCommandHandler creates a handler for stock movements.
func NewAddInventoryMovementCommandHandler(
	uowFactory InventoryUoWFactory,
	publisher ports.EventPublisher,
) AddInventoryMovementCommandHandler {
	return AddInventoryMovementCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the movement command.
// Returns errs.InsufficientStockError when a decrease would drive available
// stock below zero.
func (h AddInventoryMovementCommandHandler) Handle(ctx context.Context, cmd AddInventoryMovementCommand) error {
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

	inventoryRepo := uow.InventoryRepository()
	aggregate, err := inventoryRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = aggregate.AddMovement(
		cmd.Kind(),
		cmd.Quantity(),
		cmd.Reason(),
		cmd.Actor(),
		cmd.Reference(),
	); err != nil {
		return err
	}

	if err = inventoryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, "inventory.movement-recorded", "inventory-item", aggregate.ID(), map[string]any{
		"sku":      aggregate.SKU(),
		"kind":     cmd.Kind().String(),
		"quantity": cmd.Quantity(),
		"current":  aggregate.Stock().Current,
	})

	return nil
}
