package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

// publishEvent emits a lifecycle event after a successful commit.
// A nil publisher disables emission; delivery failures are the publisher's
// concern and never reach the command result.
func publishEvent(
	ctx context.Context,
	publisher ports.EventPublisher,
	kind string,
	entityType string,
	entityID kernel.UUID,
	payload map[string]any,
) {
	if publisher == nil {
		return
	}

	publisher.Publish(ctx, ports.Event{
		Kind:       kind,
		EntityType: entityType,
		EntityID:   entityID.String(),
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	})
}
