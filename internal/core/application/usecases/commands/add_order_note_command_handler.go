package commands

import (
	"context"
)

// AddOrderNoteCommandHandler appends notes to orders.
type AddOrderNoteCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddOrderNoteCommandHandler creates a handler for note appends.
func NewAddOrderNoteCommandHandler(uowFactory OrderUoWFactory) AddOrderNoteCommandHandler {
	return AddOrderNoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the note command. Notes can be added in any order status,
// terminal ones included.
func (h AddOrderNoteCommandHandler) Handle(ctx context.Context, cmd AddOrderNoteCommand) error {
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

	if err = aggregate.AddNote(cmd.Text(), cmd.Actor()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
