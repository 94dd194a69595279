// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and authorization.
// Every user owns exactly one cart, created in the same transaction as the
// account itself; a persisted user without a cart is a storage-level bug.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique user login identifier.
	// Typically used during authentication and cart/order lookups.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext, and it is never serialized
	// into API responses. Plaintext passwords only travel in request DTOs.
	PasswordHash string `json:"-"`

	// Cart is the user's owned cart. Populated by repository lookups that
	// join the carts table; never nil for a persisted user.
	Cart *Cart `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
