// Package kafka publishes order lifecycle events to a Kafka topic.
// Events are emitted strictly after the database commit; the database is the
// source of truth and a lost event is a logged degradation, not a rollback.
package kafka

import (
	"context"
	"encoding/json"

	"evdealer/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// OrderEventPublisher implements ports.OrderEventPublisher over a kafka-go
// writer. Messages are keyed by order ID so all status changes of one order
// land on the same partition in commit order.
type OrderEventPublisher struct {
	writer *kafka.Writer
}

// NewOrderEventPublisher creates a publisher writing to the given topic.
func NewOrderEventPublisher(brokers []string, topic string) *OrderEventPublisher {
	return &OrderEventPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

// PublishOrderStatusChanged serializes the event envelope as JSON and writes
// it to the topic.
func (p *OrderEventPublisher) PublishOrderStatusChanged(
	ctx context.Context,
	event ports.OrderStatusChangedEvent,
) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID.String()),
		Value: value,
		Time:  event.OccurredAt,
	})
}

// Close flushes buffered messages and releases the writer's connections.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}
