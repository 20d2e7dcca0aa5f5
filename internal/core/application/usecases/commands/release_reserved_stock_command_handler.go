package commands

import (
	"context"
)

// ReleaseReservedStockCommandHandler gives back stock holds.
// The release is clamped inside the aggregate, so releasing twice is
// idempotent in effect.
type ReleaseReservedStockCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewReleaseReservedStockCommandHandler creates a handler for hold releases.
func NewReleaseReservedStockCommandHandler(uowFactory InventoryUoWFactory) ReleaseReservedStockCommandHandler {
	return ReleaseReservedStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the release command.
func (h ReleaseReservedStockCommandHandler) Handle(ctx context.Context, cmd ReleaseReservedStockCommand) error {
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

	if _, err = aggregate.ReleaseReserved(cmd.Quantity(), cmd.Reason(), cmd.Actor()); err != nil {
		return err
	}

	if err = inventoryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
