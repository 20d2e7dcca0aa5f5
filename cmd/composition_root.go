package cmd

import (
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
}

// NewCompositionRoot wires adapters into use case handlers.
// The publisher may be nil; commands then skip event emission.
func NewCompositionRoot(_ Config, gormDB *gorm.DB, publisher ports.EventPublisher) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.fullUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateAddOrderNoteCommandHandler() commands.AddOrderNoteCommandHandler {
	return commands.NewAddOrderNoteCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(c.fullUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateRegisterVehicleCommandHandler() commands.RegisterVehicleCommandHandler {
	return commands.NewRegisterVehicleCommandHandler(c.vehicleUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCreateRouteCommandHandler() commands.CreateRouteCommandHandler {
	return commands.NewCreateRouteCommandHandler(c.routeUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateAddWaypointCommandHandler() commands.AddWaypointCommandHandler {
	return commands.NewAddWaypointCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateUpdateWaypointStatusCommandHandler() commands.UpdateWaypointStatusCommandHandler {
	return commands.NewUpdateWaypointStatusCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateStartRouteCommandHandler() commands.StartRouteCommandHandler {
	return commands.NewStartRouteCommandHandler(c.tripUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCompleteRouteCommandHandler() commands.CompleteRouteCommandHandler {
	return commands.NewCompleteRouteCommandHandler(c.tripUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateOptimizeRouteCommandHandler() commands.OptimizeRouteCommandHandler {
	return commands.NewOptimizeRouteCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateUpdateRouteLocationCommandHandler() commands.UpdateRouteLocationCommandHandler {
	return commands.NewUpdateRouteLocationCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateCreateInventoryItemCommandHandler() commands.CreateInventoryItemCommandHandler {
	return commands.NewCreateInventoryItemCommandHandler(c.inventoryUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateAddInventoryMovementCommandHandler() commands.AddInventoryMovementCommandHandler {
	return commands.NewAddInventoryMovementCommandHandler(c.inventoryUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateReserveStockCommandHandler() commands.ReserveStockCommandHandler {
	return commands.NewReserveStockCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreateReleaseReservedStockCommandHandler() commands.ReleaseReservedStockCommandHandler {
	return commands.NewReleaseReservedStockCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreateCheckAlertsCommandHandler() commands.CheckAlertsCommandHandler {
	return commands.NewCheckAlertsCommandHandler(c.inventoryUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateDeactivateItemCommandHandler() commands.DeactivateItemCommandHandler {
	return commands.NewDeactivateItemCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStockLevelsQueryHandler() queries.GetStockLevelsQueryHandler {
	return queries.NewGetStockLevelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) routeUoWFactory() commands.RouteUoWFactory {
	return FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) vehicleUoWFactory() commands.VehicleUoWFactory {
	return FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) inventoryUoWFactory() commands.InventoryUoWFactory {
	return FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) tripUoWFactory() commands.TripUoWFactory {
	return FuncTripUoWFactory(func() commands.TripUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}

type FuncTripUoWFactory func() commands.TripUoW

func (f FuncTripUoWFactory) Create() commands.TripUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
