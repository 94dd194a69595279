package service

import (
	"context"

	"github.com/MKhiriev/go-shop-keeper/models"
)

// AuthService handles credential verification and the JWT token lifecycle.
type AuthService interface {
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService handles account registration and user lookups.
type UserService interface {
	CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
}

// ItemService exposes the read-only catalog.
type ItemService interface {
	ListItems(ctx context.Context) ([]models.Item, error)
	GetItemByID(ctx context.Context, itemID int64) (models.Item, error)
	GetItemsByName(ctx context.Context, name string) ([]models.Item, error)
}

// CartService applies cart mutations and keeps the persisted cart in sync.
type CartService interface {
	AddToCart(ctx context.Context, request models.ModifyCartRequest) (models.Cart, error)
	RemoveFromCart(ctx context.Context, request models.ModifyCartRequest) (models.Cart, error)
	GetCartByUsername(ctx context.Context, username string) (models.Cart, error)
}

// OrderService turns carts into orders and serves order history.
type OrderService interface {
	SubmitOrder(ctx context.Context, username string) (models.Order, error)
	GetOrderHistory(ctx context.Context, username string) ([]models.Order, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
