// Package ports defines repository and outbound interfaces for the
// fulfillment domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The update is versioned: it fails with errs.VersionIsInvalidError
	// when the stored version differs from the aggregate's.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its status history and notes.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByTrackingNumber retrieves an order by its public tracking number.
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*order.Order, error)
}
