package models

import "github.com/shopspring/decimal"

// Item is a purchasable catalog entry. Items are seeded by migrations and are
// read-only for the cart/order workflow: the price a cart slot refers to never
// changes after creation.
type Item struct {
	ItemID      int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}
