package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/agustin-pizzeria/order-service/internal/config"
	"github.com/agustin-pizzeria/order-service/internal/entities"

	"github.com/segmentio/kafka-go"
)

// orderCreatedEvent is the payload published to the kitchen topic after an
// order commits.
type orderCreatedEvent struct {
	OrderTrackingID string             `json:"orderTrackingId"`
	CustomerAddress string             `json:"customerAddress"`
	Total           float64            `json:"total"`
	Status          string             `json:"status"`
	CreatedAt       string             `json:"created_at"`
	OrderItems      []orderCreatedItem `json:"orderItems"`
}

type orderCreatedItem struct {
	ItemID       string `json:"itemId"`
	Name         string `json:"name"`
	ItemQuantity int    `json:"itemQuantity"`
}

type KafkaNotifier struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewKafkaNotifier(logger *slog.Logger, cfg config.Kafka) *KafkaNotifier {
	return &KafkaNotifier{
		logger: logger.With(slog.String("notifier", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

// OrderCreated publishes a new-order event keyed by tracking id. Delivery is
// best effort: the caller decides whether a failure matters.
func (n *KafkaNotifier) OrderCreated(ctx context.Context, order entities.Order) error {
	event := orderCreatedEvent{
		OrderTrackingID: order.TrackingID,
		CustomerAddress: order.CustomerAddress,
		Total:           order.Total.InexactFloat64(),
		Status:          order.Status,
		CreatedAt:       order.CreatedAt.Format(time.RFC3339),
		OrderItems:      make([]orderCreatedItem, 0, len(order.Items)),
	}
	for _, it := range order.Items {
		event.OrderItems = append(event.OrderItems, orderCreatedItem{
			ItemID:       it.Product.ItemID,
			Name:         it.Product.Name,
			ItemQuantity: it.Quantity,
		})
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order created event: %w", err)
	}

	if err := n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.TrackingID),
		Value: value,
	}); err != nil {
		return fmt.Errorf("failed to write order created event: %w", err)
	}

	n.logger.Debug("order created event published", slog.String("tracking_id", order.TrackingID))
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
