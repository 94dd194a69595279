// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is an immutable snapshot of a cart taken at submission time. It is
// created exactly once per submission, never mutated afterwards, and has a
// lifetime independent from the cart it was copied from.
type Order struct {
	OrderID int64           `json:"id"`
	UserID  int64           `json:"-"`
	Items   []Item          `json:"items"`
	Total   decimal.Decimal `json:"total"`

	CreatedAt time.Time `json:"created_at"`
}

// CreateOrderFromCart materializes a new order from the cart's current state.
//
// The item sequence is value-copied so that later cart mutations cannot leak
// into an already submitted order; the source cart itself is left untouched.
// Submitting the same cart twice therefore produces two orders with identical
// contents.
func CreateOrderFromCart(cart *Cart) Order {
	items := make([]Item, len(cart.Items))
	copy(items, cart.Items)

	return Order{
		UserID: cart.UserID,
		Items:  items,
		Total:  cart.Total,
	}
}

// TableName returns the name of the database table
// associated with the Order model.
func (o Order) TableName() string {
	return "orders"
}
