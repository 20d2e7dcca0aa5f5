package commands

import (
	"context"
)

// ReserveStockCommandHandler places holds on available stock.
// The available-stock check happens on the loaded aggregate and the write is
// conditioned on the loaded version, so two racing reservations that together
// exceed available stock cannot both commit; the loser retries or surfaces
// errs.InsufficientStockError on the fresh snapshot.
type ReserveStockCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewReserveStockCommandHandler creates a handler for stock reservations.
func NewReserveStockCommandHandler(uowFactory InventoryUoWFactory) ReserveStockCommandHandler {
	return ReserveStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reservation command.
func (h ReserveStockCommandHandler) Handle(ctx context.Context, cmd ReserveStockCommand) error {
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

	if err = aggregate.Reserve(cmd.Quantity(), cmd.Reason(), cmd.Actor()); err != nil {
		return err
	}

	if err = inventoryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
