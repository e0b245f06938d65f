package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/agustin-pizzeria/order-service/internal/entities"
	"github.com/agustin-pizzeria/order-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) ListProducts(ctx context.Context) ([]entities.Product, error) {
	query, args := r.qb.Select("item_id", "name", "price", "description", "category").
		From("products").
		OrderBy("category ASC", "name ASC").
		MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductToEntity(p))
	}
	return result, nil
}

func (r *postgresRepo) GetProduct(ctx context.Context, itemID string) (entities.Product, error) {
	query, args := r.qb.Select("item_id", "name", "price", "description", "category").
		From("products").
		Where(sq.Eq{"item_id": itemID}).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ProductNotFoundError{ItemID: itemID}
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	return ProductToEntity(product), nil
}

func (r *postgresRepo) InsertOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(
			"order_tracking_id", "customer_address", "subtotal", "delivery_fee",
			"total", "status", "created_at", "estimated_delivery_time",
		).
		Values(
			o.TrackingID, o.CustomerAddress, o.Subtotal, o.DeliveryFee,
			o.Total, o.Status, o.CreatedAt, o.EstimatedDeliveryTime,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *postgresRepo) InsertOrderItems(ctx context.Context, trackingID string, items []entities.PricedLineItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_tracking_id", "item_id", "item_quantity", "subtotal")

	for _, it := range items {
		q = q.Values(trackingID, it.Product.ItemID, it.Quantity, it.Subtotal)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order items: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrder(ctx context.Context, trackingID string) (entities.Order, error) {
	query, args := r.qb.Select(
		"order_tracking_id", "customer_address", "subtotal", "delivery_fee",
		"total", "status", "created_at", "estimated_delivery_time").
		From("orders").
		Where(sq.Eq{"order_tracking_id": trackingID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	return OrderToEntity(order, nil), nil
}

// ListOrderItems returns the order's line items with a live catalog snapshot
// joined in. Prices read here are current catalog prices, not the prices at
// the time the order was placed.
func (r *postgresRepo) ListOrderItems(ctx context.Context, trackingID string) ([]entities.PricedLineItem, error) {
	query, args := r.qb.Select(
		"oi.order_tracking_id", "oi.item_id", "oi.item_quantity", "oi.subtotal",
		"p.name", "p.price", "p.description", "p.category").
		From("order_items oi").
		Join("products p ON p.item_id = oi.item_id").
		Where(sq.Eq{"oi.order_tracking_id": trackingID}).
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}

	result := make([]entities.PricedLineItem, 0, len(items))
	for _, it := range items {
		result = append(result, OrderItemToEntity(it))
	}
	return result, nil
}

func (r *postgresRepo) ListOrders(ctx context.Context) ([]entities.Order, error) {
	query, args := r.qb.Select(
		"order_tracking_id", "customer_address", "subtotal", "delivery_fee",
		"total", "status", "created_at", "estimated_delivery_time").
		From("orders").
		OrderBy("created_at DESC").
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, nil))
	}
	return result, nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
