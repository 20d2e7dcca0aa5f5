package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database, history and notes included.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order under an optimistic version check.
// The row is updated only while its stored version matches the aggregate's;
// a mismatch means a concurrent writer won and yields VersionIsInvalidError.
// History and notes are append-only: existing rows are never rewritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loadedVersion := dto.Version
	dto.Version = loadedVersion + 1

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select("*").
		Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause("order",
			fmt.Errorf("stored version differs from %d", loadedVersion))
	}

	if len(dto.History) > 0 {
		if err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto.History).Error; err != nil {
			return err
		}
	}
	if len(dto.Notes) > 0 {
		if err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto.Notes).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its history and notes.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.getBy(ctx, "id = ?", id.Bytes(), id.String())
}

// GetByTrackingNumber retrieves an order by its public tracking number.
func (r *GormOrderRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*order.Order, error) {
	if trackingNumber == "" {
		return nil, errs.NewValueIsRequiredError("tracking number")
	}

	return r.getBy(ctx, "tracking_number = ?", trackingNumber, trackingNumber)
}

func (r *GormOrderRepository) getBy(ctx context.Context, condition string, value any, label string) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		Preload("Notes", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		First(&dto, condition, value).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", label)
		}
		return nil, err
	}

	return toDomain(dto)
}
