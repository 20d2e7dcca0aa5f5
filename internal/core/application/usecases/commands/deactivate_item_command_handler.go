package commands

import (
	"context"
)

// DeactivateItemCommandHandler retires stock items.
type DeactivateItemCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewDeactivateItemCommandHandler creates a handler for item deactivation.
func NewDeactivateItemCommandHandler(uowFactory InventoryUoWFactory) DeactivateItemCommandHandler {
	return DeactivateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deactivation command. Deactivating an already inactive
// item is a no-op, not an error.
func (h DeactivateItemCommandHandler) Handle(ctx context.Context, cmd DeactivateItemCommand) error {
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

	aggregate.Deactivate()

	if err = inventoryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
