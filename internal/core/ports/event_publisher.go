package ports

import (
	"context"
	"time"
)

// Event is a lifecycle notification emitted after a state change has been
// committed. Payload carries a small JSON-serializable map of event details.
type Event struct {
	Kind       string
	EntityType string
	EntityID   string
	Payload    map[string]any
	OccurredAt time.Time
}

// EventPublisher delivers lifecycle events to downstream consumers.
// Publishing is fire-and-forget: implementations log delivery failures but
// never propagate them, so a broker outage cannot fail a committed command.
type EventPublisher interface {
	Publish(ctx context.Context, event Event)
}
