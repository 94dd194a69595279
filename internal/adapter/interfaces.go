// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the go-shop-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples callers (such as
// the smoke-test CLI in cmd/client) from the underlying protocol. The package
// ships an HTTP/REST implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-shop-keeper/models"
)

// ServerAdapter defines transport-agnostic communication with the
// go-shop-keeper server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account on the server. On success the bearer
	// token from the Authorization response header is stored via SetToken and
	// the created user record is returned.
	Register(ctx context.Context, request models.CreateUserRequest) (models.User, error)

	// Login authenticates an existing account. On success the bearer token
	// from the Authorization response header is stored via SetToken.
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)

	// ListItems returns the full item catalog. Requires a bearer token.
	ListItems(ctx context.Context) ([]models.Item, error)

	// GetItemsByName returns all catalog items with the given name.
	// Requires a bearer token.
	GetItemsByName(ctx context.Context, name string) ([]models.Item, error)

	// GetCart returns the current cart of the named user.
	// Requires a bearer token.
	GetCart(ctx context.Context, username string) (models.Cart, error)

	// AddToCart adds request.Quantity units of an item to the user's cart and
	// returns the updated cart. Requires a bearer token.
	AddToCart(ctx context.Context, request models.ModifyCartRequest) (models.Cart, error)

	// RemoveFromCart removes up to request.Quantity units of an item from the
	// user's cart and returns the updated cart. Requires a bearer token.
	RemoveFromCart(ctx context.Context, request models.ModifyCartRequest) (models.Cart, error)

	// SubmitOrder turns the user's current cart into an order and returns it.
	// Requires a bearer token.
	SubmitOrder(ctx context.Context, username string) (models.Order, error)

	// GetOrderHistory returns the user's past orders, newest first.
	// Requires a bearer token.
	GetOrderHistory(ctx context.Context, username string) ([]models.Order, error)

	// Version returns the server's version string.
	Version(ctx context.Context) (string, error)
}
