package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product is a catalog item. Products are pre-seeded and immutable;
// orders reference them by ItemID and never copy them into storage.
type Product struct {
	ItemID      string
	Name        string
	Price       decimal.Decimal
	Description string
	Category    string
}

// ProductNotFoundError is returned when an order references an item
// that does not exist in the catalog.
type ProductNotFoundError struct {
	ItemID string
}

func (e ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ItemID)
}
