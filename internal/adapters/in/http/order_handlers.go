package http

import (
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// LocationBody is the JSON representation of a geographic point.
type LocationBody struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// CreateOrderBody is the request payload for order creation.
type CreateOrderBody struct {
	CustomerID       string       `json:"customerId"`
	VendorID         *string      `json:"vendorId,omitempty"`
	PickupLocation   LocationBody `json:"pickupLocation"`
	DeliveryLocation LocationBody `json:"deliveryLocation"`
	PickupStart      time.Time    `json:"pickupStart"`
	PickupEnd        time.Time    `json:"pickupEnd"`
	DeliveryStart    time.Time    `json:"deliveryStart"`
	DeliveryEnd      time.Time    `json:"deliveryEnd"`
	ContactName      string       `json:"contactName"`
	ContactPhone     string       `json:"contactPhone"`
	TotalWeight      float64      `json:"totalWeight"`
	TotalVolume      float64      `json:"totalVolume"`
	DeclaredValue    float64      `json:"declaredValue"`
	TotalAmount      float64      `json:"totalAmount"`
	Currency         string       `json:"currency"`
}

// CreatedBody returns the identifier assigned to a newly created resource.
type CreatedBody struct {
	ID string `json:"id"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body CreateOrderBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.UUIDFromString(body.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	var vendorID *kernel.UUID
	if body.VendorID != nil {
		id, vendorErr := kernel.UUIDFromString(*body.VendorID)
		if vendorErr != nil {
			return badRequest(ctx, "invalid vendor id")
		}
		vendorID = &id
	}

	pickup, err := parseLocation(body.PickupLocation)
	if err != nil {
		return respondError(ctx, err)
	}

	delivery, err := parseLocation(body.DeliveryLocation)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		customerID,
		vendorID,
		pickup,
		delivery,
		body.PickupStart, body.PickupEnd,
		body.DeliveryStart, body.DeliveryEnd,
		body.ContactName,
		body.ContactPhone,
		body.TotalWeight, body.TotalVolume, body.DeclaredValue,
		body.TotalAmount,
		body.Currency,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedBody{ID: orderID.String()})
}

// UpdateOrderStatusBody is the request payload for order status changes.
type UpdateOrderStatusBody struct {
	Status   string        `json:"status"`
	Actor    string        `json:"actor"`
	Notes    string        `json:"notes,omitempty"`
	Location *LocationBody `json:"location,omitempty"`
}

// UpdateOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var body UpdateOrderStatusBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	newStatus, err := order.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "unknown order status: "+body.Status)
	}

	var location *kernel.GeoLocation
	if body.Location != nil {
		loc, locErr := parseLocation(*body.Location)
		if locErr != nil {
			return respondError(ctx, locErr)
		}
		location = &loc
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, newStatus, body.Actor, body.Notes, location)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrderBody is the request payload for order cancellation.
type CancelOrderBody struct {
	Reason string `json:"reason"`
	Actor  string `json:"actor"`
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var body CancelOrderBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, body.Reason, body.Actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddOrderNoteBody is the request payload for attaching a note to an order.
type AddOrderNoteBody struct {
	Text  string `json:"text"`
	Actor string `json:"actor"`
}

// AddOrderNote handles POST /api/v1/orders/:id/notes.
func (s *Server) AddOrderNote(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var body AddOrderNoteBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAddOrderNoteCommand(orderID, body.Text, body.Actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.addOrderNoteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AssignOrderBody is the request payload for binding transport to an order.
type AssignOrderBody struct {
	DriverID  string  `json:"driverId"`
	VehicleID string  `json:"vehicleId"`
	RouteID   *string `json:"routeId,omitempty"`
}

// AssignOrder handles POST /api/v1/orders/:id/assign.
func (s *Server) AssignOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var body AssignOrderBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	driverID, err := kernel.UUIDFromString(body.DriverID)
	if err != nil {
		return badRequest(ctx, "invalid driver id")
	}

	vehicleID, err := kernel.UUIDFromString(body.VehicleID)
	if err != nil {
		return badRequest(ctx, "invalid vehicle id")
	}

	var routeID *kernel.UUID
	if body.RouteID != nil {
		id, routeErr := kernel.UUIDFromString(*body.RouteID)
		if routeErr != nil {
			return badRequest(ctx, "invalid route id")
		}
		routeID = &id
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, driverID, vehicleID, routeID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.assignOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TrackingHistoryBody is one entry in the tracking timeline.
type TrackingHistoryBody struct {
	Status string    `json:"status"`
	Actor  string    `json:"actor"`
	Notes  string    `json:"notes,omitempty"`
	At     time.Time `json:"at"`
}

// TrackingBody is the public tracking view of an order.
type TrackingBody struct {
	OrderID            string                `json:"orderId"`
	OrderNumber        string                `json:"orderNumber"`
	TrackingNumber     string                `json:"trackingNumber"`
	Status             string                `json:"status"`
	ActualDeliveryTime *time.Time            `json:"actualDeliveryTime,omitempty"`
	History            []TrackingHistoryBody `json:"history"`
}

// TrackOrderByID handles GET /api/v1/orders/:id/tracking.
func (s *Server) TrackOrderByID(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewTrackOrderQueryByID(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.respondTracking(ctx, query)
}

// TrackOrderByNumber handles GET /api/v1/tracking/:number.
func (s *Server) TrackOrderByNumber(ctx echo.Context) error {
	query, err := queries.NewTrackOrderQueryByNumber(ctx.Param("number"))
	if err != nil {
		return respondError(ctx, err)
	}

	return s.respondTracking(ctx, query)
}

func (s *Server) respondTracking(ctx echo.Context, query queries.TrackOrderQuery) error {
	tracking, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	history := make([]TrackingHistoryBody, len(tracking.History))
	for i, entry := range tracking.History {
		history[i] = TrackingHistoryBody{
			Status: entry.Status,
			Actor:  entry.Actor,
			Notes:  entry.Notes,
			At:     entry.At,
		}
	}

	return ctx.JSON(http.StatusOK, TrackingBody{
		OrderID:            tracking.OrderID.String(),
		OrderNumber:        tracking.OrderNumber,
		TrackingNumber:     tracking.TrackingNumber,
		Status:             tracking.Status,
		ActualDeliveryTime: tracking.ActualDeliveryTime,
		History:            history,
	})
}

func parseLocation(body LocationBody) (kernel.GeoLocation, error) {
	return kernel.NewGeoLocation(body.Latitude, body.Longitude, body.Address)
}
