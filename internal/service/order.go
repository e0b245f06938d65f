package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agustin-pizzeria/order-service/internal/entities"
	"github.com/agustin-pizzeria/order-service/pkg/trm"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DeliveryFee is the flat fee added to every order.
var DeliveryFee = decimal.NewFromInt(5)

const (
	// Not computed from kitchen load yet.
	estimatedDeliveryTime = "30-45 minutes"

	embedConcurrency = 4
)

type CatalogRepo interface {
	GetProduct(ctx context.Context, itemID string) (entities.Product, error)
}

type OrderRepo interface {
	InsertOrder(ctx context.Context, order entities.Order) error
	InsertOrderItems(ctx context.Context, trackingID string, items []entities.PricedLineItem) error
	GetOrder(ctx context.Context, trackingID string) (entities.Order, error)
	ListOrderItems(ctx context.Context, trackingID string) ([]entities.PricedLineItem, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
}

type OrderNotifier interface {
	OrderCreated(ctx context.Context, order entities.Order) error
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	catalog   CatalogRepo
	orders    OrderRepo
	notifier  OrderNotifier
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	catalog CatalogRepo,
	orders OrderRepo,
	notifier OrderNotifier,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		catalog:   catalog,
		orders:    orders,
		notifier:  notifier,
	}
}

// PriceOrder resolves every requested line against the catalog, in input
// order, and calculates line subtotals and order totals. It has no side
// effects: identical input against identical catalog state always yields
// the same result. The first unresolvable item aborts the whole calculation.
func (s *orderService) PriceOrder(ctx context.Context, lines []entities.OrderLineRequest, address string) (entities.PricedOrder, error) {
	if len(lines) == 0 {
		return entities.PricedOrder{}, entities.ErrEmptyOrderItems
	}
	if address == "" {
		return entities.PricedOrder{}, entities.ErrEmptyAddress
	}

	items := make([]entities.PricedLineItem, 0, len(lines))
	sum := decimal.Zero

	for _, line := range lines {
		if line.Quantity <= 0 {
			return entities.PricedOrder{}, entities.ErrInvalidQuantity
		}

		product, err := s.catalog.GetProduct(ctx, line.ItemID)
		if err != nil {
			return entities.PricedOrder{}, err
		}

		// Each line is rounded once; the order subtotal sums the already
		// rounded line values.
		subtotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))).Round(2)
		sum = sum.Add(subtotal)

		items = append(items, entities.PricedLineItem{
			Product:  product,
			Quantity: line.Quantity,
			Subtotal: subtotal,
		})
	}

	orderSubtotal := sum.Round(2)

	return entities.PricedOrder{
		Items:           items,
		Subtotal:        orderSubtotal,
		DeliveryFee:     DeliveryFee,
		Total:           orderSubtotal.Add(DeliveryFee).Round(2),
		CustomerAddress: address,
	}, nil
}

// CreateOrder persists a priced order as one atomic batch: the header row
// and all item rows commit together or not at all. The returned order is
// re-read from storage so the response carries the same embedded catalog
// snapshot as any later read.
func (s *orderService) CreateOrder(ctx context.Context, priced entities.PricedOrder) (entities.Order, error) {
	order := entities.Order{
		TrackingID:            uuid.NewString(),
		CustomerAddress:       priced.CustomerAddress,
		Subtotal:              priced.Subtotal,
		DeliveryFee:           priced.DeliveryFee,
		Total:                 priced.Total,
		Status:                entities.StatusNew,
		CreatedAt:             time.Now().UTC(),
		EstimatedDeliveryTime: estimatedDeliveryTime,
		Items:                 priced.Items,
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.orders.InsertOrder(ctx, order); err != nil {
			return err
		}
		return s.orders.InsertOrderItems(ctx, order.TrackingID, order.Items)
	})
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info("order created",
		slog.String("tracking_id", order.TrackingID),
		slog.String("total", order.Total.String()),
	)

	// The order is already committed; a lost kitchen notification must not
	// fail the request.
	if err := s.notifier.OrderCreated(ctx, order); err != nil {
		s.logger.Warn("failed to notify kitchen",
			slog.String("tracking_id", order.TrackingID),
			slog.Any("error", err),
		)
	}

	return s.GetOrder(ctx, order.TrackingID)
}

// GetOrder returns the order with its items embedded via a live catalog
// join. Returns entities.ErrOrderNotFound on a lookup miss.
func (s *orderService) GetOrder(ctx context.Context, trackingID string) (entities.Order, error) {
	order, err := s.orders.GetOrder(ctx, trackingID)
	if err != nil {
		return entities.Order{}, err
	}

	items, err := s.orders.ListOrderItems(ctx, trackingID)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to load order items: %w", err)
	}

	order.Items = items
	return order, nil
}

// ListOrders returns all orders, newest first, with items embedded. Item
// embedding failures are isolated per order: a broken order shows up with
// an empty item list instead of taking the whole dashboard down.
func (s *orderService) ListOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	var g errgroup.Group
	g.SetLimit(embedConcurrency)

	for i := range orders {
		g.Go(func() error {
			items, err := s.orders.ListOrderItems(ctx, orders[i].TrackingID)
			if err != nil {
				s.logger.Warn("failed to load order items",
					slog.String("tracking_id", orders[i].TrackingID),
					slog.Any("error", err),
				)
				orders[i].Items = []entities.PricedLineItem{}
				return nil
			}
			orders[i].Items = items
			return nil
		})
	}
	// never returns an error, failures are degraded per order above
	_ = g.Wait()

	return orders, nil
}
