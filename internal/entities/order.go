package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// StatusNew is the only status this service ever writes. Downstream
// tooling may move orders through other states, the API does not.
const StatusNew = "new"

// OrderLineRequest is a single requested line of a prospective order.
type OrderLineRequest struct {
	ItemID   string
	Quantity int
}

// PricedLineItem is a resolved order line with the product snapshot embedded.
type PricedLineItem struct {
	Product  Product
	Quantity int
	Subtotal decimal.Decimal
}

// PricedOrder is a fully calculated, not yet persisted order.
type PricedOrder struct {
	Items           []PricedLineItem
	Subtotal        decimal.Decimal
	DeliveryFee     decimal.Decimal
	Total           decimal.Decimal
	CustomerAddress string
}

// Order is a persisted order. Items are embedded at read time by joining
// order item rows with the catalog.
type Order struct {
	TrackingID            string
	CustomerAddress       string
	Subtotal              decimal.Decimal
	DeliveryFee           decimal.Decimal
	Total                 decimal.Decimal
	Status                string
	CreatedAt             time.Time
	EstimatedDeliveryTime string

	Items []PricedLineItem
}

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrEmptyOrderItems = errors.New("order items are required")
	ErrEmptyAddress    = errors.New("customer address is required")
	ErrInvalidQuantity = errors.New("item quantity must be positive")
)
