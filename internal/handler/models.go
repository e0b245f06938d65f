package handler

import (
	"time"

	"github.com/agustin-pizzeria/order-service/internal/entities"
)

// Product is a catalog item
type Product struct {
	ItemID      string  `json:"itemId"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category"`
}

// CatalogResponse groups the menu by category
type CatalogResponse struct {
	Categories map[string][]Product `json:"categories"`
}

// OrderLine is one requested item of a prospective order
type OrderLine struct {
	ItemID       string `json:"itemId" validate:"required"`
	ItemQuantity int    `json:"itemQuantity" validate:"required,gt=0"`
}

// OrderRequest is the body of both the calculate and the create endpoints
type OrderRequest struct {
	OrderItems      []OrderLine `json:"orderItems" validate:"required,min=1,dive"`
	CustomerAddress string      `json:"customerAddress" validate:"required"`
}

// OrderItem is a priced line with the product embedded
type OrderItem struct {
	Product      Product `json:"product"`
	ItemQuantity int     `json:"itemQuantity"`
	Subtotal     float64 `json:"subtotal"`
}

// PricedOrder is the calculate response payload
type PricedOrder struct {
	OrderItems      []OrderItem `json:"orderItems"`
	Subtotal        float64     `json:"subtotal"`
	DeliveryFee     float64     `json:"delivery_fee"`
	Total           float64     `json:"total"`
	CustomerAddress string      `json:"customerAddress"`
}

// Order is a persisted order with embedded items
type Order struct {
	OrderTrackingID       string      `json:"orderTrackingId"`
	CustomerAddress       string      `json:"customerAddress"`
	Subtotal              float64     `json:"subtotal"`
	DeliveryFee           float64     `json:"delivery_fee"`
	Total                 float64     `json:"total"`
	Status                string      `json:"status"`
	CreatedAt             string      `json:"created_at"`
	EstimatedDeliveryTime string      `json:"estimated_delivery_time"`
	OrderItems            []OrderItem `json:"orderItems"`
}

// CreateOrderResponse is the create endpoint payload
type CreateOrderResponse struct {
	OrderTrackingID string `json:"orderTrackingId"`
	Order           Order  `json:"order"`
}

// GetOrderResponse wraps a single order
type GetOrderResponse struct {
	Order Order `json:"order"`
}

func ProductEntityToJSON(p entities.Product) Product {
	return Product{
		ItemID:      p.ItemID,
		Name:        p.Name,
		Price:       p.Price.InexactFloat64(),
		Description: p.Description,
		Category:    p.Category,
	}
}

// GroupProductsByCategory keeps the repo's (category, name) ordering within
// each group; grouping itself is only a presentation transform.
func GroupProductsByCategory(products []entities.Product) CatalogResponse {
	categories := make(map[string][]Product)
	for _, p := range products {
		categories[p.Category] = append(categories[p.Category], ProductEntityToJSON(p))
	}
	return CatalogResponse{Categories: categories}
}

func OrderLinesToEntities(lines []OrderLine) []entities.OrderLineRequest {
	result := make([]entities.OrderLineRequest, 0, len(lines))
	for _, line := range lines {
		result = append(result, entities.OrderLineRequest{
			ItemID:   line.ItemID,
			Quantity: line.ItemQuantity,
		})
	}
	return result
}

func OrderItemEntityToJSON(i entities.PricedLineItem) OrderItem {
	return OrderItem{
		Product:      ProductEntityToJSON(i.Product),
		ItemQuantity: i.Quantity,
		Subtotal:     i.Subtotal.InexactFloat64(),
	}
}

func orderItemsToJSON(items []entities.PricedLineItem) []OrderItem {
	result := make([]OrderItem, 0, len(items))
	for _, it := range items {
		result = append(result, OrderItemEntityToJSON(it))
	}
	return result
}

func PricedOrderEntityToJSON(o entities.PricedOrder) PricedOrder {
	return PricedOrder{
		OrderItems:      orderItemsToJSON(o.Items),
		Subtotal:        o.Subtotal.InexactFloat64(),
		DeliveryFee:     o.DeliveryFee.InexactFloat64(),
		Total:           o.Total.InexactFloat64(),
		CustomerAddress: o.CustomerAddress,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	return Order{
		OrderTrackingID:       o.TrackingID,
		CustomerAddress:       o.CustomerAddress,
		Subtotal:              o.Subtotal.InexactFloat64(),
		DeliveryFee:           o.DeliveryFee.InexactFloat64(),
		Total:                 o.Total.InexactFloat64(),
		Status:                o.Status,
		CreatedAt:             o.CreatedAt.Format(time.RFC3339),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime,
		OrderItems:            orderItemsToJSON(o.Items),
	}
}
