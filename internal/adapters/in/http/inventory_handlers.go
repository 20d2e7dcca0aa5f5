package http

import (
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateInventoryItemBody is the request payload for item registration.
type CreateInventoryItemBody struct {
	SKU          string     `json:"sku"`
	Name         string     `json:"name"`
	ReorderPoint int        `json:"reorderPoint"`
	Maximum      int        `json:"maximum"`
	ExpiryDate   *time.Time `json:"expiryDate,omitempty"`
}

// CreateInventoryItem handles POST /api/v1/inventory/items.
func (s *Server) CreateInventoryItem(ctx echo.Context) error {
	var body CreateInventoryItemBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewCreateInventoryItemCommand(
		itemID,
		body.SKU,
		body.Name,
		body.ReorderPoint,
		body.Maximum,
		body.ExpiryDate,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedBody{ID: itemID.String()})
}

// AddMovementBody is the request payload for recording a stock movement.
type AddMovementBody struct {
	Kind      string `json:"kind"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
	Actor     string `json:"actor"`
	Reference string `json:"reference,omitempty"`
}

// AddInventoryMovement handles POST /api/v1/inventory/items/:id/movements.
func (s *Server) AddInventoryMovement(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid item id")
	}

	var body AddMovementBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	kind, err := inventory.MovementKindFromString(body.Kind)
	if err != nil {
		return badRequest(ctx, "unknown movement kind: "+body.Kind)
	}

	cmd, err := commands.NewAddInventoryMovementCommand(itemID, kind, body.Quantity, body.Reason, body.Actor, body.Reference)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.addMovementHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// StockReservationBody is the request payload for reserving or releasing stock.
type StockReservationBody struct {
	Quantity int    `json:"quantity"`
	Reason   string `json:"reason"`
	Actor    string `json:"actor"`
}

// ReserveStock handles POST /api/v1/inventory/items/:id/reservations.
func (s *Server) ReserveStock(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid item id")
	}

	var body StockReservationBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewReserveStockCommand(itemID, body.Quantity, body.Reason, body.Actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.reserveStockHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReleaseReservedStock handles POST /api/v1/inventory/items/:id/reservations/release.
func (s *Server) ReleaseReservedStock(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid item id")
	}

	var body StockReservationBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewReleaseReservedStockCommand(itemID, body.Quantity, body.Reason, body.Actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.releaseReservedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AlertBody is one threshold alert raised by an item.
type AlertBody struct {
	Kind    string    `json:"kind"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// CheckAlerts handles POST /api/v1/inventory/items/:id/check-alerts.
// Returns the alerts raised by this evaluation; an empty list means no
// thresholds fired or every fired alert is still within its re-alert window.
func (s *Server) CheckAlerts(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid item id")
	}

	cmd, err := commands.NewCheckAlertsCommand(itemID, time.Now().UTC())
	if err != nil {
		return respondError(ctx, err)
	}

	alerts, err := s.checkAlertsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]AlertBody, len(alerts))
	for i, alert := range alerts {
		response[i] = AlertBody{
			Kind:    alert.Kind.String(),
			Message: alert.Message,
			At:      alert.At,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// DeactivateItem handles DELETE /api/v1/inventory/items/:id.
func (s *Server) DeactivateItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid item id")
	}

	cmd, err := commands.NewDeactivateItemCommand(itemID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deactivateItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StockLevelBody is one row in the stock levels report.
type StockLevelBody struct {
	ItemID    string `json:"itemId"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	Current   int    `json:"current"`
	Reserved  int    `json:"reserved"`
	Available int    `json:"available"`
	Status    string `json:"status"`
}

// GetStockLevels handles GET /api/v1/inventory/stock-levels.
func (s *Server) GetStockLevels(ctx echo.Context) error {
	query := queries.NewGetStockLevelsQuery()

	levels, err := s.getStockLevelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]StockLevelBody, len(levels))
	for i, level := range levels {
		response[i] = StockLevelBody{
			ItemID:    level.ItemID.String(),
			SKU:       level.SKU,
			Name:      level.Name,
			Current:   level.Current,
			Reserved:  level.Reserved,
			Available: level.Available,
			Status:    level.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
