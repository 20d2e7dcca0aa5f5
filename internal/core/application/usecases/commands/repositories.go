// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and post-commit event emission.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RouteRepoFactory provides access to the route repository within a transaction.
	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// InventoryRepoFactory provides access to the inventory repository within a transaction.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// RouteUoW manages transactions for route-only operations.
	RouteUoW interface {
		TxManager
		RouteRepoFactory
	}

	// RouteUoWFactory creates new route unit of work instances.
	RouteUoWFactory interface {
		Create() RouteUoW
	}

	// VehicleUoW manages transactions for vehicle-only operations.
	VehicleUoW interface {
		TxManager
		VehicleRepoFactory
	}

	// VehicleUoWFactory creates new vehicle unit of work instances.
	VehicleUoWFactory interface {
		Create() VehicleUoW
	}

	// InventoryUoW manages transactions for inventory-only operations.
	InventoryUoW interface {
		TxManager
		InventoryRepoFactory
	}

	// InventoryUoWFactory creates new inventory unit of work instances.
	InventoryUoWFactory interface {
		Create() InventoryUoW
	}

	// TripUoW manages transactions spanning route and vehicle aggregates.
	// Used by route start/complete, which move the bound vehicle as well.
	TripUoW interface {
		TxManager
		RouteRepoFactory
		VehicleRepoFactory
	}

	// TripUoWFactory creates new trip unit of work instances.
	TripUoWFactory interface {
		Create() TripUoW
	}

	// UoW manages transactions across all fulfillment aggregates.
	// Used for commands that coordinate changes between multiple aggregate
	// types, such as assignment and cancellation.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   vehicleRepo := uow.VehicleRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		RouteRepoFactory
		VehicleRepoFactory
		InventoryRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
