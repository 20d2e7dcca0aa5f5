package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate to storage.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle aggregate.
	// The update is versioned and fails with errs.VersionIsInvalidError when
	// a concurrent writer got there first.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Book persists a vehicle that has just been assigned to a driver.
	// The write is conditional on the stored row still being available, so
	// concurrent assignments cannot both claim the same vehicle; the loser
	// receives errs.VehicleUnavailableError.
	Book(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)
}
