package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCheckAlertsCommandIsNotConstructed = errors.New(
	"CheckAlertsCommand must be created via NewCheckAlertsCommand constructor",
)

// CheckAlertsCommand represents a request to evaluate one item's stock and
// expiration against its thresholds. It is a command rather than a query:
// the re-alert gate persists last-alerted timestamps.
type CheckAlertsCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	now    time.Time

	guard guard.ConstructorGuard
}

// NewCheckAlertsCommand creates a command to evaluate an item's alerts at the
// given time.
func NewCheckAlertsCommand(itemID kernel.UUID, now time.Time) (CheckAlertsCommand, error) {
	cmd := CheckAlertsCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setItemID(itemID); err != nil {
		return CheckAlertsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckAlertsCommand) Validate() error {
	return c.guard.Validate(ErrCheckAlertsCommandIsNotConstructed)
}

// ItemID returns the target item identifier.
func (c CheckAlertsCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Now returns the evaluation time.
func (c CheckAlertsCommand) Now() time.Time {
	return c.now
}

func (c *CheckAlertsCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
