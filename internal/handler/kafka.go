package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/eshop-service/internal/config"
	"github.com/SergeyBogomolovv/eshop-service/internal/entities"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type OrderCreator interface {
	CreateOrder(ctx context.Context, req entities.CreateOrderRequest) (entities.Order, error)
}

type kafkaHandler struct {
	dlq      *kafka.Writer
	reader   *kafka.Reader
	logger   *slog.Logger
	validate *validator.Validate
	orders   OrderCreator
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, orders OrderCreator) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate: validator.New(),
		orders:   orders,
	}
}

// Consume reads order requests until ctx is cancelled. A request that fails
// is written to the DLQ and committed; order creation is not retried.
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

		if err := h.HandleMessage(ctx, m); err != nil {
			h.logger.Error("failed to handle message",
				slog.Any("error", err),
				slog.Int64("offset", m.Offset),
				slog.Int("partition", m.Partition),
			)

			// kafka.Writer retries on its own
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			ordersDLQ.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

// HandleMessage turns one message into an order. The payload is the
// POST /orders body; user is required since there is no caller identity.
func (h *kafkaHandler) HandleMessage(ctx context.Context, m kafka.Message) error {
	orderRequestsInProgress.Inc()
	defer orderRequestsInProgress.Dec()
	start := time.Now()
	defer func() { orderRequestDuration.Observe(time.Since(start).Seconds()) }()

	var req CreateOrderRequest
	if err := json.Unmarshal(m.Value, &req); err != nil {
		ordersRejected.WithLabelValues("decode").Inc()
		return fmt.Errorf("failed to unmarshal order request: %w", err)
	}

	if err := h.validate.Struct(req); err != nil {
		ordersRejected.WithLabelValues("validation").Inc()
		return fmt.Errorf("invalid order request: %w", err)
	}
	if err := h.validate.Var(req.User, "required"); err != nil {
		ordersRejected.WithLabelValues("validation").Inc()
		return fmt.Errorf("invalid order request: user: %w", err)
	}

	order, err := h.orders.CreateOrder(ctx, CreateOrderJSONToEntity(req))
	if err != nil {
		ordersRejected.WithLabelValues("order").Inc()
		return err
	}

	ordersConsumed.Inc()
	h.logger.Debug("order created from message", slog.String("order_id", order.ID), slog.Int64("offset", m.Offset))
	return nil
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
