package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/config"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type CheckoutCreator interface {
	CreateFromCart(ctx context.Context, actor entities.Actor, userNotes string) (entities.OrderView, error)
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaHandler struct {
	dlq      messageWriter
	reader   messageReader
	logger   *slog.Logger
	validate *validator.Validate
	creator  CheckoutCreator
}

// NewCheckoutConsumer turns checkout requests from Kafka into orders.
// Messages that cannot be processed are moved to "<topic>-dlq".
func NewCheckoutConsumer(logger *slog.Logger, cfg config.Kafka, creator CheckoutCreator) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.CheckoutTopic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate: validator.New(),
		creator:  creator,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		h.process(ctx, m)
	}
}

func (h *kafkaHandler) process(ctx context.Context, m kafka.Message) {
	checkoutsInProgress.Inc()
	defer checkoutsInProgress.Dec()
	start := time.Now()

	err := h.handleCheckout(ctx, m)
	checkoutProcessingDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		checkoutsFailed.Inc()
		h.logger.Error("failed to handle checkout",
			slog.Any("error", err),
			slog.Int64("offset", m.Offset),
			slog.Int("partition", m.Partition),
		)

		// the writer retries on its own
		if err := h.WriteToDLQ(ctx, m); err != nil {
			h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
			return
		}
		checkoutsDLQ.Inc()
	} else {
		checkoutsProcessed.Inc()
	}

	if err := h.reader.CommitMessages(ctx, m); err != nil {
		commitErrors.Inc()
		h.logger.Error("failed to commit message", slog.Any("error", err))
	}
}

func (h *kafkaHandler) handleCheckout(ctx context.Context, m kafka.Message) error {
	var msg CheckoutMessage
	if err := json.Unmarshal(m.Value, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal checkout: %w", err)
	}

	if err := h.validate.Struct(msg); err != nil {
		return fmt.Errorf("invalid checkout data: %w", err)
	}

	actor := entities.Actor{ID: uuid.MustParse(msg.BuyerID), Role: entities.RoleBuyer}
	view, err := h.creator.CreateFromCart(ctx, actor, msg.UserNotes)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	h.logger.Info("order created from checkout",
		slog.String("order_id", view.ID.String()),
		slog.String("number", view.Number),
		slog.String("buyer_id", msg.BuyerID),
	)
	return nil
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	return h.dlq.WriteMessages(ctx, kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	})
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
