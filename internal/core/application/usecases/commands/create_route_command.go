package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateRouteCommandIsNotConstructed = errors.New(
	"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
)

// WaypointInput describes one waypoint of a route being created.
// Order is implied by position in the slice.
type WaypointInput struct {
	ID             kernel.UUID
	Location       kernel.GeoLocation
	Kind           route.Kind
	PlannedArrival *time.Time
}

// CreateRouteCommand represents a request to create a route, optionally with
// an initial waypoint sequence.
type CreateRouteCommand struct { //nolint:recvcheck //using for validation
	routeID   kernel.UUID
	createdBy kernel.UUID
	schedule  kernel.TimeWindow
	waypoints []WaypointInput

	guard guard.ConstructorGuard
}

// NewCreateRouteCommand creates a command to create a route.
// The schedule window is validated here (start < end); waypoint coordinates
// and sequence are validated by the aggregate.
func NewCreateRouteCommand(
	routeID kernel.UUID,
	createdBy kernel.UUID,
	plannedStart, plannedEnd time.Time,
	waypoints []WaypointInput,
) (CreateRouteCommand, error) {
	cmd := CreateRouteCommand{
		waypoints: waypoints,
		guard:     guard.NewConstructorGuard(),
	}

	schedule, scheduleErr := kernel.NewTimeWindow(plannedStart, plannedEnd)

	if err := errors.Join(
		cmd.setRouteID(routeID),
		cmd.setCreatedBy(createdBy),
		scheduleErr,
	); err != nil {
		return CreateRouteCommand{}, err
	}

	cmd.schedule = schedule
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

// RouteID returns the identifier assigned to the new route.
func (c CreateRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// CreatedBy returns who is creating the route.
func (c CreateRouteCommand) CreatedBy() kernel.UUID {
	return c.createdBy
}

// Schedule returns the validated planned time window.
func (c CreateRouteCommand) Schedule() kernel.TimeWindow {
	return c.schedule
}

// Waypoints returns the initial waypoint inputs, possibly empty.
func (c CreateRouteCommand) Waypoints() []WaypointInput {
	return c.waypoints
}

func (c *CreateRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}

func (c *CreateRouteCommand) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}

	c.createdBy = createdBy
	return nil
}
