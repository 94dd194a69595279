// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/shopspring/decimal"

// Cart is a user's in-progress collection of chosen items with a running
// monetary total. The item sequence is ordered and may contain duplicates:
// one slot per unit, each slot holding a full item reference.
//
// Invariant: Total always equals the sum of the prices of every slot in
// Items. The total is maintained incrementally on every mutation, never
// recomputed from scratch, so all arithmetic is exact decimal.
type Cart struct {
	CartID int64           `json:"id"`
	UserID int64           `json:"-"`
	Items  []Item          `json:"items"`
	Total  decimal.Decimal `json:"total"`
}

// NewCart returns an empty cart owned by the given user with a zero total.
func NewCart(userID int64) *Cart {
	return &Cart{
		UserID: userID,
		Items:  []Item{},
		Total:  decimal.Zero,
	}
}

// AddItem appends a single slot referencing item and increments the running
// total by the item's price.
func (c *Cart) AddItem(item Item) {
	c.Items = append(c.Items, item)
	c.Total = c.Total.Add(item.Price)
}

// AddItems appends quantity slots referencing item. A quantity of zero (or a
// negative one) is a no-op: the sequence and the total are left untouched.
func (c *Cart) AddItems(item Item, quantity int) {
	for i := 0; i < quantity; i++ {
		c.AddItem(item)
	}
}

// RemoveItems removes up to quantity occurrences of item (matched by ItemID)
// from the sequence and decrements the total by the item's price for each
// unit actually removed.
//
// Removing more occurrences than are present is tolerated: removal clamps at
// zero occurrences and the total is only reduced by the units that were in
// the cart. Later slots are removed first, so the relative order of the
// remaining slots is preserved.
//
// Returns the number of units actually removed.
func (c *Cart) RemoveItems(item Item, quantity int) int {
	removed := 0
	for i := len(c.Items) - 1; i >= 0 && removed < quantity; i-- {
		if c.Items[i].ItemID != item.ItemID {
			continue
		}
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
		c.Total = c.Total.Sub(item.Price)
		removed++
	}

	return removed
}

// TableName returns the name of the database table
// associated with the Cart model.
func (c Cart) TableName() string {
	return "carts"
}
