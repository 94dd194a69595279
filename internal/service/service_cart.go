// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/store"
	"github.com/MKhiriev/go-shop-keeper/models"
)

// cartService is the concrete implementation of CartService.
// Every mutation loads the persisted cart, applies the change in memory via
// the models.Cart methods, and writes the whole cart back in one transaction,
// so the stored running total always matches the stored item sequence.
type cartService struct {
	userRepository store.UserRepository
	itemRepository store.ItemRepository
	cartRepository store.CartRepository

	logger *logger.Logger
}

func NewCartService(storages *store.Storages, logger *logger.Logger) CartService {
	return &cartService{
		userRepository: storages.UserRepository,
		itemRepository: storages.ItemRepository,
		cartRepository: storages.CartRepository,
		logger:         logger,
	}
}

// AddToCart appends request.Quantity units of the item to the user's cart and
// increases the running total by price times quantity.
//
// Returns the updated cart or:
//   - ErrInvalidDataProvided on an empty username or negative quantity.
//   - A wrapped storage error if the user, item, or cart cannot be resolved
//     or the updated cart cannot be saved.
func (c *cartService) AddToCart(ctx context.Context, request models.ModifyCartRequest) (models.Cart, error) {
	log := logger.FromContext(ctx)

	cart, item, err := c.resolve(ctx, request)
	if err != nil {
		return models.Cart{}, err
	}

	cart.AddItems(item, request.Quantity)

	if err := c.cartRepository.SaveCart(ctx, cart); err != nil {
		log.Err(err).Int64("cartID", cart.CartID).Msg("cart save failed after add")
		return models.Cart{}, fmt.Errorf("cart save failed: %w", err)
	}

	return cart, nil
}

// RemoveFromCart removes up to request.Quantity units of the item from the
// user's cart and decreases the running total by price times the number of
// units actually removed. Asking to remove more units than the cart holds
// removes every occurrence and stops; it is not an error.
//
// Returns the updated cart or the same errors as AddToCart.
func (c *cartService) RemoveFromCart(ctx context.Context, request models.ModifyCartRequest) (models.Cart, error) {
	log := logger.FromContext(ctx)

	cart, item, err := c.resolve(ctx, request)
	if err != nil {
		return models.Cart{}, err
	}

	removed := cart.RemoveItems(item, request.Quantity)
	if removed < request.Quantity {
		log.Debug().
			Int64("cartID", cart.CartID).
			Int64("itemID", item.ItemID).
			Int("requested", request.Quantity).
			Int("removed", removed).
			Msg("removal clamped to items present in cart")
	}

	if err := c.cartRepository.SaveCart(ctx, cart); err != nil {
		log.Err(err).Int64("cartID", cart.CartID).Msg("cart save failed after remove")
		return models.Cart{}, fmt.Errorf("cart save failed: %w", err)
	}

	return cart, nil
}

// GetCartByUsername returns the current cart of the named user.
func (c *cartService) GetCartByUsername(ctx context.Context, username string) (models.Cart, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		return models.Cart{}, ErrInvalidDataProvided
	}

	user, err := c.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.Cart{}, fmt.Errorf("user search by username failed: %w", err)
	}

	cart, err := c.cartRepository.FindCartByUserID(ctx, user.UserID)
	if err != nil {
		log.Err(err).Int64("userID", user.UserID).Msg("cart lookup failed")
		return models.Cart{}, fmt.Errorf("cart lookup failed: %w", err)
	}

	return cart, nil
}

// resolve validates the mutation request and loads the cart and catalog item
// it refers to.
func (c *cartService) resolve(ctx context.Context, request models.ModifyCartRequest) (models.Cart, models.Item, error) {
	log := logger.FromContext(ctx)

	if request.Username == "" || request.Quantity < 0 {
		log.Error().
			Str("username", request.Username).
			Int("quantity", request.Quantity).
			Msg("invalid cart mutation request")
		return models.Cart{}, models.Item{}, ErrInvalidDataProvided
	}

	user, err := c.userRepository.FindUserByUsername(ctx, request.Username)
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user search by username failed")
		return models.Cart{}, models.Item{}, fmt.Errorf("user search by username failed: %w", err)
	}

	item, err := c.itemRepository.FindItemByID(ctx, request.ItemID)
	if err != nil {
		log.Err(err).Int64("itemID", request.ItemID).Msg("item search by id failed")
		return models.Cart{}, models.Item{}, fmt.Errorf("item search by id failed: %w", err)
	}

	cart, err := c.cartRepository.FindCartByUserID(ctx, user.UserID)
	if err != nil {
		log.Err(err).Int64("userID", user.UserID).Msg("cart lookup failed")
		return models.Cart{}, models.Item{}, fmt.Errorf("cart lookup failed: %w", err)
	}

	return cart, item, nil
}
