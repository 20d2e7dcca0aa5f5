package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/pkg/guard"
)

var ErrAddWaypointCommandIsNotConstructed = errors.New(
	"AddWaypointCommand must be created via NewAddWaypointCommand constructor",
)

// AddWaypointCommand represents a request to append a waypoint to a route.
type AddWaypointCommand struct { //nolint:recvcheck //using for validation
	routeID        kernel.UUID
	waypointID     kernel.UUID
	location       kernel.GeoLocation
	kind           route.Kind
	plannedArrival *time.Time

	guard guard.ConstructorGuard
}

// NewAddWaypointCommand creates a command to append a waypoint.
func NewAddWaypointCommand(
	routeID kernel.UUID,
	waypointID kernel.UUID,
	location kernel.GeoLocation,
	kind route.Kind,
	plannedArrival *time.Time,
) (AddWaypointCommand, error) {
	cmd := AddWaypointCommand{
		plannedArrival: plannedArrival,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRouteID(routeID),
		cmd.setWaypointID(waypointID),
		cmd.setLocation(location),
		cmd.setKind(kind),
	); err != nil {
		return AddWaypointCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddWaypointCommand) Validate() error {
	return c.guard.Validate(ErrAddWaypointCommandIsNotConstructed)
}

// RouteID returns the target route identifier.
func (c AddWaypointCommand) RouteID() kernel.UUID {
	return c.routeID
}

// WaypointID returns the identifier for the new waypoint.
func (c AddWaypointCommand) WaypointID() kernel.UUID {
	return c.waypointID
}

// Location returns the waypoint coordinates.
func (c AddWaypointCommand) Location() kernel.GeoLocation {
	return c.location
}

// Kind returns the waypoint kind.
func (c AddWaypointCommand) Kind() route.Kind {
	return c.kind
}

// PlannedArrival returns the optional planned arrival time.
func (c AddWaypointCommand) PlannedArrival() *time.Time {
	return c.plannedArrival
}

func (c *AddWaypointCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}

func (c *AddWaypointCommand) setWaypointID(waypointID kernel.UUID) error {
	if err := waypointID.Validate(); err != nil {
		return err
	}

	c.waypointID = waypointID
	return nil
}

func (c *AddWaypointCommand) setLocation(location kernel.GeoLocation) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

func (c *AddWaypointCommand) setKind(kind route.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}
