package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrReserveStockCommandIsNotConstructed = errors.New(
	"ReserveStockCommand must be created via NewReserveStockCommand constructor",
)

// ReserveStockCommand represents a request to place a hold on available stock.
type ReserveStockCommand struct { //nolint:recvcheck //using for validation
	itemID   kernel.UUID
	quantity int
	reason   string
	actor    string

	guard guard.ConstructorGuard
}

// NewReserveStockCommand creates a command to reserve stock.
func NewReserveStockCommand(
	itemID kernel.UUID,
	quantity int,
	reason string,
	actor string,
) (ReserveStockCommand, error) {
	cmd := ReserveStockCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setQuantity(quantity),
		cmd.setActor(actor),
	); err != nil {
		return ReserveStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReserveStockCommand) Validate() error {
	return c.guard.Validate(ErrReserveStockCommandIsNotConstructed)
}

// ItemID returns the target item identifier.
func (c ReserveStockCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Quantity returns the amount to reserve.
func (c ReserveStockCommand) Quantity() int {
	return c.quantity
}

// Reason returns the reservation reason.
func (c ReserveStockCommand) Reason() string {
	return c.reason
}

// Actor returns who requested the reservation.
func (c ReserveStockCommand) Actor() string {
	return c.actor
}

func (c *ReserveStockCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *ReserveStockCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}

func (c *ReserveStockCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	c.actor = actor
	return nil
}
