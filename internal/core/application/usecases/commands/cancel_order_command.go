package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel an order.
// Cancellation computes the refund amount and releases any bound transport.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  string
	actor   string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
// Reason and actor are required: both end up in the cancellation record.
func NewCancelOrderCommand(orderID kernel.UUID, reason, actor string) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setReason(reason),
		cmd.setActor(actor),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the cancellation reason.
func (c CancelOrderCommand) Reason() string {
	return c.reason
}

// Actor returns who requested the cancellation.
func (c CancelOrderCommand) Actor() string {
	return c.actor
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}

func (c *CancelOrderCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	c.actor = actor
	return nil
}
