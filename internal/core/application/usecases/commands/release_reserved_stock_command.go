package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrReleaseReservedStockCommandIsNotConstructed = errors.New(
	"ReleaseReservedStockCommand must be created via NewReleaseReservedStockCommand constructor",
)

// ReleaseReservedStockCommand represents a request to give back a stock hold.
type ReleaseReservedStockCommand struct { //nolint:recvcheck //using for validation
	itemID   kernel.UUID
	quantity int
	reason   string
	actor    string

	guard guard.ConstructorGuard
}

// NewReleaseReservedStockCommand creates a command to release reserved stock.
// Releasing more than is currently reserved is clamped, not an error.
func NewReleaseReservedStockCommand(
	itemID kernel.UUID,
	quantity int,
	reason string,
	actor string,
) (ReleaseReservedStockCommand, error) {
	cmd := ReleaseReservedStockCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setQuantity(quantity),
		cmd.setActor(actor),
	); err != nil {
		return ReleaseReservedStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseReservedStockCommand) Validate() error {
	return c.guard.Validate(ErrReleaseReservedStockCommandIsNotConstructed)
}

// ItemID returns the target item identifier.
func (c ReleaseReservedStockCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Quantity returns the amount to release.
func (c ReleaseReservedStockCommand) Quantity() int {
	return c.quantity
}

// Reason returns the release reason.
func (c ReleaseReservedStockCommand) Reason() string {
	return c.reason
}

// Actor returns who requested the release.
func (c ReleaseReservedStockCommand) Actor() string {
	return c.actor
}

func (c *ReleaseReservedStockCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *ReleaseReservedStockCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}

func (c *ReleaseReservedStockCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	c.actor = actor
	return nil
}
