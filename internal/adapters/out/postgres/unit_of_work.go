// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. The Unit of Work maintains a list of aggregates affected by a
// business transaction and coordinates writing out changes and resolving
// concurrency conflicts.
//
// Key features:
//   - Transaction management across multiple repositories
//   - Aggregate tracking for post-commit event processing
//   - Proper isolation between concurrent operations
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"fulfillment/internal/adapters/out/postgres/inventoryrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/routerepo"
	"fulfillment/internal/adapters/out/postgres/vehiclerepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database
// connections. Each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The provided database connection is shared by all created
// instances; transactions are per instance.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction
// management. Each instance maintains its own transaction state and aggregate
// tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for business operations. Repositories obtained from it execute
// within the current transaction when one is active.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls on the same instance are safe and will not create nested
// transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or if the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or if the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns an order repository bound to the current
// transaction when one is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// RouteRepository returns a route repository bound to the current
// transaction when one is active.
func (uow *GormUnitOfWork) RouteRepository() ports.RouteRepository {
	return routerepo.NewGormRouteRepository(uow.conn(), uow)
}

// VehicleRepository returns a vehicle repository bound to the current
// transaction when one is active.
func (uow *GormUnitOfWork) VehicleRepository() ports.VehicleRepository {
	return vehiclerepo.NewGormVehicleRepository(uow.conn(), uow)
}

// InventoryRepository returns an inventory repository bound to the current
// transaction when one is active.
func (uow *GormUnitOfWork) InventoryRepository() ports.InventoryRepository {
	return inventoryrepo.NewGormInventoryRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Repository implementations call it when aggregates are added or
// updated; the tracked set enables post-commit event processing.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
