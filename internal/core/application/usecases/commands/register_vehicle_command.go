package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/vehicle"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRegisterVehicleCommandIsNotConstructed = errors.New(
	"RegisterVehicleCommand must be created via NewRegisterVehicleCommand constructor",
)

// RegisterVehicleCommand represents a request to add a vehicle to the fleet.
type RegisterVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID
	plate     string
	capacity  vehicle.Capacity

	guard guard.ConstructorGuard
}

// NewRegisterVehicleCommand creates a command to register a fleet vehicle.
func NewRegisterVehicleCommand(
	vehicleID kernel.UUID,
	plate string,
	capacityWeight, capacityVolume float64,
) (RegisterVehicleCommand, error) {
	capacity, err := vehicle.NewCapacity(capacityWeight, capacityVolume)
	if err != nil {
		return RegisterVehicleCommand{}, err
	}

	cmd := RegisterVehicleCommand{
		capacity: capacity,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVehicleID(vehicleID),
		cmd.setPlate(plate),
	); err != nil {
		return RegisterVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterVehicleCommand) Validate() error {
	return c.guard.Validate(ErrRegisterVehicleCommandIsNotConstructed)
}

// VehicleID returns the identifier for the new vehicle.
func (c RegisterVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Plate returns the vehicle registration plate.
func (c RegisterVehicleCommand) Plate() string {
	return c.plate
}

// Capacity returns the carrying capacity limits.
func (c RegisterVehicleCommand) Capacity() vehicle.Capacity {
	return c.capacity
}

func (c *RegisterVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *RegisterVehicleCommand) setPlate(plate string) error {
	if plate == "" {
		return errs.NewValueIsRequiredError("plate")
	}

	c.plate = plate
	return nil
}
