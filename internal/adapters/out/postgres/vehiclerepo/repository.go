package vehiclerepo

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/vehicle"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVehicleRepository implements VehicleRepository using GORM.
type GormVehicleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB, tracker aggregateTracker) *GormVehicleRepository {
	return &GormVehicleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vehicle to the database.
func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing vehicle under an optimistic version check.
func (r *GormVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loadedVersion := dto.Version
	dto.Version = loadedVersion + 1

	result := r.db.WithContext(ctx).
		Model(&VehicleDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause("vehicle",
			fmt.Errorf("stored version differs from %d", loadedVersion))
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Book persists a freshly assigned vehicle through a status compare-and-swap.
// The write succeeds only while the stored row is still available, so of two
// concurrent assignments targeting the same vehicle at most one commits; the
// loser gets VehicleUnavailableError and its transaction rolls back with both
// aggregates unchanged.
func (r *GormVehicleRepository) Book(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version++

	result := r.db.WithContext(ctx).
		Model(&VehicleDTO{}).
		Where("id = ? AND status = ?", dto.ID, vehicle.Available.String()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewVehicleUnavailableError(aggregate.ID().String(), r.storedStatus(ctx, dto.ID))
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a vehicle by ID.
func (r *GormVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// storedStatus reads the current status for the unavailability message.
func (r *GormVehicleRepository) storedStatus(ctx context.Context, id any) string {
	var status string
	err := r.db.WithContext(ctx).
		Model(&VehicleDTO{}).
		Select("status").
		Where("id = ?", id).
		Take(&status).Error
	if err != nil {
		return "unavailable"
	}
	return status
}
