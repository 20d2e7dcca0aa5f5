package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCompleteRouteCommandIsNotConstructed = errors.New(
	"CompleteRouteCommand must be created via NewCompleteRouteCommand constructor",
)

// CompleteRouteCommand represents a request to finish route execution.
// Notes and issues are recorded on the route for the completion report.
type CompleteRouteCommand struct { //nolint:recvcheck //using for validation
	routeID     kernel.UUID
	completedAt time.Time
	notes       string
	issues      []string

	guard guard.ConstructorGuard
}

// NewCompleteRouteCommand creates a command to complete a route.
func NewCompleteRouteCommand(
	routeID kernel.UUID,
	completedAt time.Time,
	notes string,
	issues []string,
) (CompleteRouteCommand, error) {
	cmd := CompleteRouteCommand{
		completedAt: completedAt,
		notes:       notes,
		issues:      issues,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setRouteID(routeID); err != nil {
		return CompleteRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteRouteCommand) Validate() error {
	return c.guard.Validate(ErrCompleteRouteCommandIsNotConstructed)
}

// RouteID returns the target route identifier.
func (c CompleteRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// CompletedAt returns the actual completion time.
func (c CompleteRouteCommand) CompletedAt() time.Time {
	return c.completedAt
}

// Notes returns the completion notes.
func (c CompleteRouteCommand) Notes() string {
	return c.notes
}

// Issues returns problems encountered during execution.
func (c CompleteRouteCommand) Issues() []string {
	return c.issues
}

func (c *CompleteRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}
