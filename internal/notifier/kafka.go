package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/config"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/segmentio/kafka-go"
)

const (
	EventOrderCreated = "order.created"
	EventOrderUpdated = "order.updated"
)

// Event is published for every created or transitioned order.
type Event struct {
	Type       string             `json:"type"`
	OccurredAt time.Time          `json:"occurred_at"`
	Order      entities.OrderView `json:"order"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaNotifier struct {
	writer messageWriter
	clock  func() time.Time
}

// NewKafkaNotifier publishes order events keyed by order id, so events of one
// order stay ordered within a partition.
func NewKafkaNotifier(cfg config.Kafka) *kafkaNotifier {
	return &kafkaNotifier{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.NotificationsTopic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           cfg.BatchTimeout,
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
		},
		clock: time.Now,
	}
}

func (n *kafkaNotifier) NotifyCreated(ctx context.Context, order entities.OrderView) error {
	return n.publish(ctx, EventOrderCreated, order)
}

func (n *kafkaNotifier) NotifyUpdated(ctx context.Context, order entities.OrderView) error {
	return n.publish(ctx, EventOrderUpdated, order)
}

func (n *kafkaNotifier) publish(ctx context.Context, eventType string, order entities.OrderView) error {
	data, err := json.Marshal(Event{
		Type:       eventType,
		OccurredAt: n.clock().UTC(),
		Order:      order,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.ID.String()),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}
	return nil
}

func (n *kafkaNotifier) Close() error {
	return n.writer.Close()
}
