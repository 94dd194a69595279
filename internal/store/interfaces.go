package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-shop-keeper/models"
)

// UserRepository is the persistence capability for user accounts.
type UserRepository interface {
	// CreateUserWithCart persists a new user together with its empty cart in
	// a single transaction. A user must never exist without a cart.
	CreateUserWithCart(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the user whose username matches exactly, or
	// ErrNoUserWasFound.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID returns the user with the given identifier, or
	// ErrNoUserWasFound.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// ItemRepository is the read-only lookup capability for the item catalog.
type ItemRepository interface {
	// ListItems returns every item in the catalog.
	ListItems(ctx context.Context) ([]models.Item, error)

	// FindItemByID returns the item with the given identifier, or
	// ErrNoItemWasFound.
	FindItemByID(ctx context.Context, itemID int64) (models.Item, error)

	// FindItemsByName returns all items whose name matches exactly.
	// An empty result is not an error at this layer.
	FindItemsByName(ctx context.Context, name string) ([]models.Item, error)
}

// CartRepository is the persistence capability for carts.
type CartRepository interface {
	// FindCartByUserID returns the user's cart with its full ordered item
	// sequence, or ErrNoCartWasFound.
	FindCartByUserID(ctx context.Context, userID int64) (models.Cart, error)

	// SaveCart persists the cart's total and item sequence transactionally so
	// the stored state always equals the in-memory state.
	SaveCart(ctx context.Context, cart models.Cart) error
}

// OrderRepository is the persistence capability for submitted orders.
type OrderRepository interface {
	// CreateOrder persists an order snapshot and returns it with
	// server-assigned fields (OrderID, CreatedAt) populated.
	CreateOrder(ctx context.Context, order models.Order) (models.Order, error)

	// FindOrdersByUserID returns all orders submitted by the user, newest
	// first. An empty history is a valid result.
	FindOrdersByUserID(ctx context.Context, userID int64) ([]models.Order, error)
}
