package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAddInventoryMovementCommandIsNotConstructed = errors.New(
	"AddInventoryMovementCommand must be created via NewAddInventoryMovementCommand constructor",
)

// AddInventoryMovementCommand represents a request to record a stock movement.
type AddInventoryMovementCommand struct { //nolint:recvcheck //using for validation
	itemID    kernel.UUID
	kind      inventory.MovementKind
	quantity  int
	reason    string
	actor     string
	reference string

	guard guard.ConstructorGuard
}

// NewAddInventoryMovementCommand creates a command to record a movement.
// quantity must be positive for every kind except adjustment, where a
// negative value expresses a downward correction. reference is optional.
func NewAddInventoryMovementCommand(
	itemID kernel.UUID,
	kind inventory.MovementKind,
	quantity int,
	reason string,
	actor string,
	reference string,
) (AddInventoryMovementCommand, error) {
	cmd := AddInventoryMovementCommand{
		quantity:  quantity,
		reason:    reason,
		reference: reference,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setKind(kind),
		cmd.setActor(actor),
	); err != nil {
		return AddInventoryMovementCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddInventoryMovementCommand) Validate() error {
	return c.guard.Validate(ErrAddInventoryMovementCommandIsNotConstructed)
}

// ItemID returns the target item identifier.
func (c AddInventoryMovementCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Kind returns the movement kind.
func (c AddInventoryMovementCommand) Kind() inventory.MovementKind {
	return c.kind
}

// Quantity returns the movement quantity.
func (c AddInventoryMovementCommand) Quantity() int {
	return c.quantity
}

// Reason returns the movement reason.
func (c AddInventoryMovementCommand) Reason() string {
	return c.reason
}

// Actor returns who recorded the movement.
func (c AddInventoryMovementCommand) Actor() string {
	return c.actor
}

// Reference returns the optional external document reference.
func (c AddInventoryMovementCommand) Reference() string {
	return c.reference
}

func (c *AddInventoryMovementCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *AddInventoryMovementCommand) setKind(kind inventory.MovementKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *AddInventoryMovementCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	c.actor = actor
	return nil
}
