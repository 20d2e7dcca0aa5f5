package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/vehicle"
	"fulfillment/internal/core/ports"
)

// RegisterVehicleCommandHandler adds vehicles to the fleet.
// New vehicles start available with zero trip metrics.
type RegisterVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
	publisher  ports.EventPublisher
}

// NewRegisterVehicleCommandHandler creates a handler for vehicle registration.
func NewRegisterVehicleCommandHandler(
	uowFactory VehicleUoWFactory,
	publisher ports.EventPublisher,
) RegisterVehicleCommandHandler {
	return RegisterVehicleCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the vehicle registration command.
// The plate is unique: the repository rejects duplicates.
func (h RegisterVehicleCommandHandler) Handle(ctx context.Context, cmd RegisterVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := vehicle.NewVehicle(cmd.VehicleID(), cmd.Plate(), cmd.Capacity())
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

	if err = uow.VehicleRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, "vehicle.registered", "vehicle", aggregate.ID(), map[string]any{
		"plate": aggregate.Plate(),
	})

	return nil
}
