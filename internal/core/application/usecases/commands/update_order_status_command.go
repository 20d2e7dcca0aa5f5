package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to move an order along its
// lifecycle. The transition itself is validated by the aggregate; the command
// only guarantees well-formed input.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	newStatus order.Status
	actor     string
	notes     string
	location  *kernel.GeoLocation

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to change an order's status.
// Notes and location are optional context recorded in the history entry.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	newStatus order.Status,
	actor string,
	notes string,
	location *kernel.GeoLocation,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		notes:    notes,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNewStatus(newStatus),
		cmd.setActor(actor),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewStatus returns the requested status.
func (c UpdateOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

// Actor returns who requested the change.
func (c UpdateOrderStatusCommand) Actor() string {
	return c.actor
}

// Notes returns the optional history note.
func (c UpdateOrderStatusCommand) Notes() string {
	return c.notes
}

// Location returns the optional location recorded with the change.
func (c UpdateOrderStatusCommand) Location() *kernel.GeoLocation {
	return c.location
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}

func (c *UpdateOrderStatusCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	c.actor = actor
	return nil
}
