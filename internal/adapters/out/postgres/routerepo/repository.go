package routerepo

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRouteRepository implements RouteRepository using GORM.
type GormRouteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRouteRepository creates a new GORM route repository.
func NewGormRouteRepository(db *gorm.DB, tracker aggregateTracker) *GormRouteRepository {
	return &GormRouteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new route to the database, waypoints included.
func (r *GormRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
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

// Update saves an existing route under an optimistic version check.
// Waypoints are upserted because Optimize rewrites their positions; the path
// log is replaced wholesale because the cap drops its oldest samples.
func (r *GormRouteRepository) Update(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loadedVersion := dto.Version
	dto.Version = loadedVersion + 1

	result := r.db.WithContext(ctx).
		Model(&RouteDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select("*").
		Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause("route",
			fmt.Errorf("stored version differs from %d", loadedVersion))
	}

	if len(dto.Waypoints) > 0 {
		if err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(&dto.Waypoints).Error; err != nil {
			return err
		}
	}

	if err := r.db.WithContext(ctx).
		Where("route_id = ?", dto.ID).
		Delete(&TrackSampleDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Path) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Path).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a route by ID with its waypoints in position order and its
// path log in sample order.
func (r *GormRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RouteDTO
	err := r.db.WithContext(ctx).
		Preload("Waypoints", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Path", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
