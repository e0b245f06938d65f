package repo

import (
	"database/sql"
	"time"

	"github.com/agustin-pizzeria/order-service/internal/entities"

	"github.com/shopspring/decimal"
)

type Product struct {
	ItemID      string          `db:"item_id"`
	Name        string          `db:"name"`
	Price       decimal.Decimal `db:"price"`
	Description sql.NullString  `db:"description"`
	Category    string          `db:"category"`
}

type Order struct {
	TrackingID            string          `db:"order_tracking_id"`
	CustomerAddress       string          `db:"customer_address"`
	Subtotal              decimal.Decimal `db:"subtotal"`
	DeliveryFee           decimal.Decimal `db:"delivery_fee"`
	Total                 decimal.Decimal `db:"total"`
	Status                string          `db:"status"`
	CreatedAt             time.Time       `db:"created_at"`
	EstimatedDeliveryTime string          `db:"estimated_delivery_time"`
}

// OrderItem is an order_items row joined with its products row.
type OrderItem struct {
	TrackingID  string          `db:"order_tracking_id"`
	ItemID      string          `db:"item_id"`
	Quantity    int             `db:"item_quantity"`
	Subtotal    decimal.Decimal `db:"subtotal"`
	Name        string          `db:"name"`
	Price       decimal.Decimal `db:"price"`
	Description sql.NullString  `db:"description"`
	Category    string          `db:"category"`
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ItemID:      p.ItemID,
		Name:        p.Name,
		Price:       p.Price,
		Description: nullStringToString(p.Description),
		Category:    p.Category,
	}
}

// OrderItemToEntity embeds the joined catalog snapshot into a line item.
// Get, list and the create response all go through this one conversion.
func OrderItemToEntity(i OrderItem) entities.PricedLineItem {
	return entities.PricedLineItem{
		Product: entities.Product{
			ItemID:      i.ItemID,
			Name:        i.Name,
			Price:       i.Price,
			Description: nullStringToString(i.Description),
			Category:    i.Category,
		},
		Quantity: i.Quantity,
		Subtotal: i.Subtotal,
	}
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		TrackingID:            o.TrackingID,
		CustomerAddress:       o.CustomerAddress,
		Subtotal:              o.Subtotal,
		DeliveryFee:           o.DeliveryFee,
		Total:                 o.Total,
		Status:                o.Status,
		CreatedAt:             o.CreatedAt,
		EstimatedDeliveryTime: o.EstimatedDeliveryTime,
	}

	if len(items) > 0 {
		order.Items = make([]entities.PricedLineItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, OrderItemToEntity(it))
		}
	}

	return order
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
