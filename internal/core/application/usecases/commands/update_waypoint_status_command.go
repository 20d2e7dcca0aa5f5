package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateWaypointStatusCommandIsNotConstructed = errors.New(
	"UpdateWaypointStatusCommand must be created via NewUpdateWaypointStatusCommand constructor",
)

// UpdateWaypointStatusCommand represents a request to move a waypoint through
// its pending/arrived/completed/skipped lifecycle.
type UpdateWaypointStatusCommand struct { //nolint:recvcheck //using for validation
	routeID    kernel.UUID
	waypointID kernel.UUID
	newStatus  route.WaypointStatus
	at         time.Time

	guard guard.ConstructorGuard
}

// NewUpdateWaypointStatusCommand creates a command to change a waypoint status.
// The at timestamp is recorded as the actual arrival or departure time.
func NewUpdateWaypointStatusCommand(
	routeID kernel.UUID,
	waypointID kernel.UUID,
	newStatus route.WaypointStatus,
	at time.Time,
) (UpdateWaypointStatusCommand, error) {
	cmd := UpdateWaypointStatusCommand{
		at:    at,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRouteID(routeID),
		cmd.setWaypointID(waypointID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return UpdateWaypointStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateWaypointStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateWaypointStatusCommandIsNotConstructed)
}

// RouteID returns the target route identifier.
func (c UpdateWaypointStatusCommand) RouteID() kernel.UUID {
	return c.routeID
}

// WaypointID returns the target waypoint identifier.
func (c UpdateWaypointStatusCommand) WaypointID() kernel.UUID {
	return c.waypointID
}

// NewStatus returns the requested waypoint status.
func (c UpdateWaypointStatusCommand) NewStatus() route.WaypointStatus {
	return c.newStatus
}

// At returns the timestamp of the status change.
func (c UpdateWaypointStatusCommand) At() time.Time {
	return c.at
}

func (c *UpdateWaypointStatusCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}

func (c *UpdateWaypointStatusCommand) setWaypointID(waypointID kernel.UUID) error {
	if err := waypointID.Validate(); err != nil {
		return err
	}

	c.waypointID = waypointID
	return nil
}

func (c *UpdateWaypointStatusCommand) setNewStatus(newStatus route.WaypointStatus) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
