package inventoryrepo

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB, tracker aggregateTracker) *GormInventoryRepository {
	return &GormInventoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new inventory item. Duplicate SKUs are rejected by the unique
// index.
func (r *GormInventoryRepository) Add(ctx context.Context, aggregate *inventory.Item) error {
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

// Update saves an existing item under an optimistic version check.
// The check turns the stock comparisons done on the loaded aggregate into
// compare-and-swap writes: a racing writer bumps the version first and this
// update affects zero rows, yielding VersionIsInvalidError. Ledger rows are
// append-only; alert timestamps are upserted.
func (r *GormInventoryRepository) Update(ctx context.Context, aggregate *inventory.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loadedVersion := dto.Version
	dto.Version = loadedVersion + 1

	result := r.db.WithContext(ctx).
		Model(&ItemDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select("*").
		Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause("inventory item",
			fmt.Errorf("stored version differs from %d", loadedVersion))
	}

	if len(dto.Movements) > 0 {
		if err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto.Movements).Error; err != nil {
			return err
		}
	}
	if len(dto.Alerts) > 0 {
		if err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(&dto.Alerts).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an item by ID with its ledger and alert timestamps.
func (r *GormInventoryRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.getBy(ctx, "id = ?", id.Bytes(), id.String())
}

// GetBySKU retrieves an item by its stock keeping unit.
func (r *GormInventoryRepository) GetBySKU(ctx context.Context, sku string) (*inventory.Item, error) {
	if sku == "" {
		return nil, errs.NewValueIsRequiredError("sku")
	}

	return r.getBy(ctx, "sku = ?", sku, sku)
}

// GetAllActive retrieves every item that has not been deactivated.
func (r *GormInventoryRepository) GetAllActive(ctx context.Context) ([]*inventory.Item, error) {
	var dtos []ItemDTO
	err := r.db.WithContext(ctx).
		Preload("Movements", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		Preload("Alerts").
		Order("sku").
		Find(&dtos, "active").Error
	if err != nil {
		return nil, err
	}

	items := make([]*inventory.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, itemErr := toDomain(dto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return items, nil
}

func (r *GormInventoryRepository) getBy(ctx context.Context, condition string, value any, label string) (*inventory.Item, error) {
	var dto ItemDTO
	err := r.db.WithContext(ctx).
		Preload("Movements", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		Preload("Alerts").
		First(&dto, condition, value).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inventory item", label)
		}
		return nil, err
	}

	return toDomain(dto)
}
