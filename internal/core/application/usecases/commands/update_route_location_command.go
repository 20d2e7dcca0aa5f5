package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateRouteLocationCommandIsNotConstructed = errors.New(
	"UpdateRouteLocationCommand must be created via NewUpdateRouteLocationCommand constructor",
)

// UpdateRouteLocationCommand represents a vehicle position report for a route.
type UpdateRouteLocationCommand struct { //nolint:recvcheck //using for validation
	routeID  kernel.UUID
	location kernel.GeoLocation
	at       time.Time

	guard guard.ConstructorGuard
}

// NewUpdateRouteLocationCommand creates a command to record a position sample.
func NewUpdateRouteLocationCommand(
	routeID kernel.UUID,
	location kernel.GeoLocation,
	at time.Time,
) (UpdateRouteLocationCommand, error) {
	cmd := UpdateRouteLocationCommand{
		at:    at,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRouteID(routeID),
		cmd.setLocation(location),
	); err != nil {
		return UpdateRouteLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRouteLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRouteLocationCommandIsNotConstructed)
}

// RouteID returns the target route identifier.
func (c UpdateRouteLocationCommand) RouteID() kernel.UUID {
	return c.routeID
}

// Location returns the reported position.
func (c UpdateRouteLocationCommand) Location() kernel.GeoLocation {
	return c.location
}

// At returns when the position was sampled.
func (c UpdateRouteLocationCommand) At() time.Time {
	return c.at
}

func (c *UpdateRouteLocationCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}

func (c *UpdateRouteLocationCommand) setLocation(location kernel.GeoLocation) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
