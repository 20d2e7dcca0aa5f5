package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrDeactivateItemCommandIsNotConstructed = errors.New(
	"DeactivateItemCommand must be created via NewDeactivateItemCommand constructor",
)

// DeactivateItemCommand represents a request to retire a stock item.
// Items are deactivated, never deleted; the ledger remains readable.
type DeactivateItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeactivateItemCommand creates a command to deactivate an item.
func NewDeactivateItemCommand(itemID kernel.UUID) (DeactivateItemCommand, error) {
	cmd := DeactivateItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setItemID(itemID); err != nil {
		return DeactivateItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeactivateItemCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateItemCommandIsNotConstructed)
}

// ItemID returns the target item identifier.
func (c DeactivateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *DeactivateItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
