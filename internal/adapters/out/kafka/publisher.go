// Package kafka implements the outbound event publisher on top of a Kafka
// topic. Events are emitted after state changes have been committed, so
// delivery failures are logged and dropped rather than surfaced to callers.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"fulfillment/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// message is the wire representation of a published event.
type message struct {
	Kind       string         `json:"kind"`
	EntityType string         `json:"entityType"`
	EntityID   string         `json:"entityId"`
	Payload    map[string]any `json:"payload,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
}

// Publisher writes lifecycle events to a single Kafka topic, keyed by entity
// identifier so that all events for one entity land on the same partition.
type Publisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewPublisher creates a Publisher for the given broker list (comma-separated)
// and topic.
func NewPublisher(brokers, topic string, logger *slog.Logger) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(strings.Split(brokers, ",")...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
		logger: logger.With("component", "kafka-publisher"),
	}
}

// Publish serializes the event and writes it to the topic. Failures are
// logged, never returned.
func (p *Publisher) Publish(ctx context.Context, event ports.Event) {
	value, err := json.Marshal(message{
		Kind:       event.Kind,
		EntityType: event.EntityType,
		EntityID:   event.EntityID,
		Payload:    event.Payload,
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to serialize event",
			"kind", event.Kind,
			"entityId", event.EntityID,
			"error", err)
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.EntityID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
		},
	})
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to publish event",
			"kind", event.Kind,
			"entityId", event.EntityID,
			"error", err)
	}
}

// Close flushes pending messages and releases the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
