// Package http exposes the fulfillment use cases over a JSON REST API.
// Handlers translate between HTTP payloads and application commands/queries;
// domain errors map onto HTTP status codes in errors.go.
package http

import (
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler          commands.CreateOrderCommandHandler
	updateOrderStatusHandler    commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler          commands.CancelOrderCommandHandler
	addOrderNoteHandler         commands.AddOrderNoteCommandHandler
	assignOrderHandler          commands.AssignOrderCommandHandler
	registerVehicleHandler      commands.RegisterVehicleCommandHandler
	createRouteHandler          commands.CreateRouteCommandHandler
	addWaypointHandler          commands.AddWaypointCommandHandler
	updateWaypointStatusHandler commands.UpdateWaypointStatusCommandHandler
	startRouteHandler           commands.StartRouteCommandHandler
	completeRouteHandler        commands.CompleteRouteCommandHandler
	optimizeRouteHandler        commands.OptimizeRouteCommandHandler
	updateRouteLocationHandler  commands.UpdateRouteLocationCommandHandler
	createItemHandler           commands.CreateInventoryItemCommandHandler
	addMovementHandler          commands.AddInventoryMovementCommandHandler
	reserveStockHandler         commands.ReserveStockCommandHandler
	releaseReservedHandler      commands.ReleaseReservedStockCommandHandler
	checkAlertsHandler          commands.CheckAlertsCommandHandler
	deactivateItemHandler       commands.DeactivateItemCommandHandler

	// Query handlers
	trackOrderHandler     queries.TrackOrderQueryHandler
	getStockLevelsHandler queries.GetStockLevelsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	addOrderNoteHandler commands.AddOrderNoteCommandHandler,
	assignOrderHandler commands.AssignOrderCommandHandler,
	registerVehicleHandler commands.RegisterVehicleCommandHandler,
	createRouteHandler commands.CreateRouteCommandHandler,
	addWaypointHandler commands.AddWaypointCommandHandler,
	updateWaypointStatusHandler commands.UpdateWaypointStatusCommandHandler,
	startRouteHandler commands.StartRouteCommandHandler,
	completeRouteHandler commands.CompleteRouteCommandHandler,
	optimizeRouteHandler commands.OptimizeRouteCommandHandler,
	updateRouteLocationHandler commands.UpdateRouteLocationCommandHandler,
	createItemHandler commands.CreateInventoryItemCommandHandler,
	addMovementHandler commands.AddInventoryMovementCommandHandler,
	reserveStockHandler commands.ReserveStockCommandHandler,
	releaseReservedHandler commands.ReleaseReservedStockCommandHandler,
	checkAlertsHandler commands.CheckAlertsCommandHandler,
	deactivateItemHandler commands.DeactivateItemCommandHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	getStockLevelsHandler queries.GetStockLevelsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		updateOrderStatusHandler:    updateOrderStatusHandler,
		cancelOrderHandler:          cancelOrderHandler,
		addOrderNoteHandler:         addOrderNoteHandler,
		assignOrderHandler:          assignOrderHandler,
		registerVehicleHandler:      registerVehicleHandler,
		createRouteHandler:          createRouteHandler,
		addWaypointHandler:          addWaypointHandler,
		updateWaypointStatusHandler: updateWaypointStatusHandler,
		startRouteHandler:           startRouteHandler,
		completeRouteHandler:        completeRouteHandler,
		optimizeRouteHandler:        optimizeRouteHandler,
		updateRouteLocationHandler:  updateRouteLocationHandler,
		createItemHandler:           createItemHandler,
		addMovementHandler:          addMovementHandler,
		reserveStockHandler:         reserveStockHandler,
		releaseReservedHandler:      releaseReservedHandler,
		checkAlertsHandler:          checkAlertsHandler,
		deactivateItemHandler:       deactivateItemHandler,
		trackOrderHandler:           trackOrderHandler,
		getStockLevelsHandler:       getStockLevelsHandler,
	}
}

// RegisterRoutes attaches all API endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/status", s.UpdateOrderStatus)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/notes", s.AddOrderNote)
	api.POST("/orders/:id/assign", s.AssignOrder)
	api.GET("/orders/:id/tracking", s.TrackOrderByID)
	api.GET("/tracking/:number", s.TrackOrderByNumber)

	api.POST("/vehicles", s.RegisterVehicle)

	api.POST("/routes", s.CreateRoute)
	api.POST("/routes/:id/waypoints", s.AddWaypoint)
	api.PUT("/routes/:id/waypoints/:waypointId/status", s.UpdateWaypointStatus)
	api.POST("/routes/:id/start", s.StartRoute)
	api.POST("/routes/:id/complete", s.CompleteRoute)
	api.POST("/routes/:id/optimize", s.OptimizeRoute)
	api.POST("/routes/:id/location", s.UpdateRouteLocation)

	api.POST("/inventory/items", s.CreateInventoryItem)
	api.POST("/inventory/items/:id/movements", s.AddInventoryMovement)
	api.POST("/inventory/items/:id/reservations", s.ReserveStock)
	api.POST("/inventory/items/:id/reservations/release", s.ReleaseReservedStock)
	api.POST("/inventory/items/:id/check-alerts", s.CheckAlerts)
	api.DELETE("/inventory/items/:id", s.DeactivateItem)
	api.GET("/inventory/stock-levels", s.GetStockLevels)
}
