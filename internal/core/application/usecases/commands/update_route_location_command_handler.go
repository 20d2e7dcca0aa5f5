package commands

import (
	"context"
)

// UpdateRouteLocationCommandHandler records vehicle position samples.
// The path log is capped inside the aggregate; the oldest samples fall off.
type UpdateRouteLocationCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewUpdateRouteLocationCommandHandler creates a handler for position reports.
func NewUpdateRouteLocationCommandHandler(uowFactory RouteUoWFactory) UpdateRouteLocationCommandHandler {
	return UpdateRouteLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the position report.
func (h UpdateRouteLocationCommandHandler) Handle(ctx context.Context, cmd UpdateRouteLocationCommand) error {
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

	routeRepo := uow.RouteRepository()
	aggregate, err := routeRepo.Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	if err = aggregate.RecordLocation(cmd.Location(), cmd.At()); err != nil {
		return err
	}

	if err = routeRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
