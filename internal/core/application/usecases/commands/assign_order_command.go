package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand represents a request to bind an order to a driver and
// vehicle, and optionally to a route, as one atomic assignment.
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	driverID  kernel.UUID
	vehicleID kernel.UUID
	routeID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to assign transport to an order.
// routeID may be nil when no route has been planned yet.
func NewAssignOrderCommand(
	orderID kernel.UUID,
	driverID kernel.UUID,
	vehicleID kernel.UUID,
	routeID *kernel.UUID,
) (AssignOrderCommand, error) {
	cmd := AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
		cmd.setVehicleID(vehicleID),
		cmd.setRouteID(routeID),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the driver taking the vehicle.
func (c AssignOrderCommand) DriverID() kernel.UUID {
	return c.driverID
}

// VehicleID returns the vehicle to book.
func (c AssignOrderCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// RouteID returns the optional route to bind.
func (c AssignOrderCommand) RouteID() *kernel.UUID {
	return c.routeID
}

func (c *AssignOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignOrderCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *AssignOrderCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *AssignOrderCommand) setRouteID(routeID *kernel.UUID) error {
	if routeID == nil {
		return nil
	}
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}
