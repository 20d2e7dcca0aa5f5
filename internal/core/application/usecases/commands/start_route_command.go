package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrStartRouteCommandIsNotConstructed = errors.New(
	"StartRouteCommand must be created via NewStartRouteCommand constructor",
)

// StartRouteCommand represents a request to begin route execution.
type StartRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID
	at      time.Time

	guard guard.ConstructorGuard
}

// NewStartRouteCommand creates a command to start a route at the given time.
func NewStartRouteCommand(routeID kernel.UUID, at time.Time) (StartRouteCommand, error) {
	cmd := StartRouteCommand{
		at:    at,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRouteID(routeID); err != nil {
		return StartRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartRouteCommand) Validate() error {
	return c.guard.Validate(ErrStartRouteCommandIsNotConstructed)
}

// RouteID returns the target route identifier.
func (c StartRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// At returns the actual start time.
func (c StartRouteCommand) At() time.Time {
	return c.at
}

func (c *StartRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}
