package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
)

// InventoryRepository defines the persistence contract for inventory items.
type InventoryRepository interface {
	// Add persists a new inventory item to storage.
	// Fails when another item with the same SKU already exists.
	Add(ctx context.Context, aggregate *inventory.Item) error

	// Update persists changes to an existing item, appending any new ledger
	// movements. The update is versioned: it fails with
	// errs.VersionIsInvalidError when the stored version differs from the
	// aggregate's, which turns stock checks into compare-and-swap writes.
	Update(ctx context.Context, aggregate *inventory.Item) error

	// Get retrieves an item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*inventory.Item, error)

	// GetBySKU retrieves an item by its stock keeping unit.
	GetBySKU(ctx context.Context, sku string) (*inventory.Item, error)

	// GetAllActive retrieves every item that has not been deactivated.
	// Used by the alert evaluation job.
	GetAllActive(ctx context.Context) ([]*inventory.Item, error)
}
