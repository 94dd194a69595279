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

// orderService is the concrete implementation of OrderService.
// An order is a write-once snapshot of the cart at submission time; the cart
// itself is left untouched, matching the submit semantics of the storefront.
type orderService struct {
	userRepository  store.UserRepository
	cartRepository  store.CartRepository
	orderRepository store.OrderRepository

	logger *logger.Logger
}

func NewOrderService(storages *store.Storages, logger *logger.Logger) OrderService {
	return &orderService{
		userRepository:  storages.UserRepository,
		cartRepository:  storages.CartRepository,
		orderRepository: storages.OrderRepository,
		logger:          logger,
	}
}

// SubmitOrder snapshots the named user's current cart into a new order.
//
// The created order copies the cart's item sequence and total. Submitting
// twice without touching the cart in between produces two orders with
// identical contents.
func (o *orderService) SubmitOrder(ctx context.Context, username string) (models.Order, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		return models.Order{}, ErrInvalidDataProvided
	}

	user, err := o.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.Order{}, fmt.Errorf("user search by username failed: %w", err)
	}

	cart, err := o.cartRepository.FindCartByUserID(ctx, user.UserID)
	if err != nil {
		log.Err(err).Int64("userID", user.UserID).Msg("cart lookup failed")
		return models.Order{}, fmt.Errorf("cart lookup failed: %w", err)
	}

	order, err := o.orderRepository.CreateOrder(ctx, models.CreateOrderFromCart(&cart))
	if err != nil {
		log.Err(err).Int64("userID", user.UserID).Msg("order creation failed")
		return models.Order{}, fmt.Errorf("order creation failed: %w", err)
	}

	return order, nil
}

// GetOrderHistory returns every order the named user has submitted, newest
// first. A user with no orders gets an empty history, not an error.
func (o *orderService) GetOrderHistory(ctx context.Context, username string) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		return nil, ErrInvalidDataProvided
	}

	user, err := o.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return nil, fmt.Errorf("user search by username failed: %w", err)
	}

	orders, err := o.orderRepository.FindOrdersByUserID(ctx, user.UserID)
	if err != nil {
		log.Err(err).Int64("userID", user.UserID).Msg("order history lookup failed")
		return nil, fmt.Errorf("order history lookup failed: %w", err)
	}

	return orders, nil
}
