package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateInventoryItemCommandIsNotConstructed = errors.New(
	"CreateInventoryItemCommand must be created via NewCreateInventoryItemCommand constructor",
)

// CreateInventoryItemCommand represents a request to register a new stock item.
type CreateInventoryItemCommand struct { //nolint:recvcheck //using for validation
	itemID     kernel.UUID
	sku        string
	name       string
	thresholds inventory.Thresholds
	expiryDate *time.Time

	guard guard.ConstructorGuard
}

// NewCreateInventoryItemCommand creates a command to register a stock item.
// expiryDate is nil for non-perishables.
func NewCreateInventoryItemCommand(
	itemID kernel.UUID,
	sku string,
	name string,
	reorderPoint int,
	maximum int,
	expiryDate *time.Time,
) (CreateInventoryItemCommand, error) {
	cmd := CreateInventoryItemCommand{
		thresholds: inventory.Thresholds{ReorderPoint: reorderPoint, Maximum: maximum},
		expiryDate: expiryDate,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setSKU(sku),
		cmd.setName(name),
	); err != nil {
		return CreateInventoryItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateInventoryItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateInventoryItemCommandIsNotConstructed)
}

// ItemID returns the identifier for the new item.
func (c CreateInventoryItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// SKU returns the stock keeping unit.
func (c CreateInventoryItemCommand) SKU() string {
	return c.sku
}

// Name returns the item display name.
func (c CreateInventoryItemCommand) Name() string {
	return c.name
}

// Thresholds returns the reorder point and maximum stock settings.
func (c CreateInventoryItemCommand) Thresholds() inventory.Thresholds {
	return c.thresholds
}

// ExpiryDate returns the optional expiry date.
func (c CreateInventoryItemCommand) ExpiryDate() *time.Time {
	return c.expiryDate
}

func (c *CreateInventoryItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *CreateInventoryItemCommand) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}

	c.sku = sku
	return nil
}

func (c *CreateInventoryItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
