package http

import (
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/route"

	"github.com/labstack/echo/v4"
)

// WaypointBody is the JSON representation of a route stop.
type WaypointBody struct {
	Location       LocationBody `json:"location"`
	Kind           string       `json:"kind"`
	PlannedArrival *time.Time   `json:"plannedArrival,omitempty"`
}

// CreateRouteBody is the request payload for route creation.
// Waypoints are visited in the order given.
type CreateRouteBody struct {
	CreatedBy    string         `json:"createdBy"`
	PlannedStart time.Time      `json:"plannedStart"`
	PlannedEnd   time.Time      `json:"plannedEnd"`
	Waypoints    []WaypointBody `json:"waypoints"`
}

// CreateRoute handles POST /api/v1/routes.
func (s *Server) CreateRoute(ctx echo.Context) error {
	var body CreateRouteBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	createdBy, err := kernel.UUIDFromString(body.CreatedBy)
	if err != nil {
		return badRequest(ctx, "invalid createdBy id")
	}

	waypoints := make([]commands.WaypointInput, len(body.Waypoints))
	for i, wp := range body.Waypoints {
		location, locErr := parseLocation(wp.Location)
		if locErr != nil {
			return respondError(ctx, locErr)
		}

		kind, kindErr := route.KindFromString(wp.Kind)
		if kindErr != nil {
			return badRequest(ctx, "unknown waypoint kind: "+wp.Kind)
		}

		waypoints[i] = commands.WaypointInput{
			ID:             kernel.NewUUID(),
			Location:       location,
			Kind:           kind,
			PlannedArrival: wp.PlannedArrival,
		}
	}

	routeID := kernel.NewUUID()
	cmd, err := commands.NewCreateRouteCommand(routeID, createdBy, body.PlannedStart, body.PlannedEnd, waypoints)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedBody{ID: routeID.String()})
}

// AddWaypoint handles POST /api/v1/routes/:id/waypoints.
// The new stop is appended to the end of the route.
func (s *Server) AddWaypoint(ctx echo.Context) error {
	routeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid route id")
	}

	var body WaypointBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	location, err := parseLocation(body.Location)
	if err != nil {
		return respondError(ctx, err)
	}

	kind, err := route.KindFromString(body.Kind)
	if err != nil {
		return badRequest(ctx, "unknown waypoint kind: "+body.Kind)
	}

	waypointID := kernel.NewUUID()
	cmd, err := commands.NewAddWaypointCommand(routeID, waypointID, location, kind, body.PlannedArrival)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.addWaypointHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedBody{ID: waypointID.String()})
}

// UpdateWaypointStatusBody is the request payload for waypoint progress.
type UpdateWaypointStatusBody struct {
	Status string     `json:"status"`
	At     *time.Time `json:"at,omitempty"`
}

// UpdateWaypointStatus handles PUT /api/v1/routes/:id/waypoints/:waypointId/status.
func (s *Server) UpdateWaypointStatus(ctx echo.Context) error {
	routeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid route id")
	}

	waypointID, err := kernel.UUIDFromString(ctx.Param("waypointId"))
	if err != nil {
		return badRequest(ctx, "invalid waypoint id")
	}

	var body UpdateWaypointStatusBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	newStatus, err := route.WaypointStatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "unknown waypoint status: "+body.Status)
	}

	cmd, err := commands.NewUpdateWaypointStatusCommand(routeID, waypointID, newStatus, timeOrNow(body.At))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateWaypointStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartRouteBody is the request payload for starting a route.
type StartRouteBody struct {
	At *time.Time `json:"at,omitempty"`
}

// StartRoute handles POST /api/v1/routes/:id/start.
func (s *Server) StartRoute(ctx echo.Context) error {
	routeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid route id")
	}

	var body StartRouteBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewStartRouteCommand(routeID, timeOrNow(body.At))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.startRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteRouteBody is the request payload for finishing a route.
type CompleteRouteBody struct {
	At     *time.Time `json:"at,omitempty"`
	Notes  string     `json:"notes,omitempty"`
	Issues []string   `json:"issues,omitempty"`
}

// CompleteRoute handles POST /api/v1/routes/:id/complete.
func (s *Server) CompleteRoute(ctx echo.Context) error {
	routeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid route id")
	}

	var body CompleteRouteBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCompleteRouteCommand(routeID, timeOrNow(body.At), body.Notes, body.Issues)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.completeRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OptimizeRoute handles POST /api/v1/routes/:id/optimize.
func (s *Server) OptimizeRoute(ctx echo.Context) error {
	routeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid route id")
	}

	cmd, err := commands.NewOptimizeRouteCommand(routeID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.optimizeRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateRouteLocationBody is the request payload for progress tracking.
type UpdateRouteLocationBody struct {
	Location LocationBody `json:"location"`
	At       *time.Time   `json:"at,omitempty"`
}

// UpdateRouteLocation handles POST /api/v1/routes/:id/location.
func (s *Server) UpdateRouteLocation(ctx echo.Context) error {
	routeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid route id")
	}

	var body UpdateRouteLocationBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	location, err := parseLocation(body.Location)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateRouteLocationCommand(routeID, location, timeOrNow(body.At))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateRouteLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func timeOrNow(t *time.Time) time.Time {
	if t != nil {
		return *t
	}
	return time.Now().UTC()
}
