// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/models"
)

// orderRepository is the SQL-backed implementation of [OrderRepository].
//
// Orders are write-once: an "orders" row plus one "order_items" row per
// snapshot slot, inserted together and never updated afterwards.
type orderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOrderRepository constructs an [OrderRepository] backed by the provided
// database connection and logger.
func NewOrderRepository(db *DB, logger *logger.Logger) OrderRepository {
	logger.Debug().Msg("creating order repository")
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

// CreateOrder persists the order snapshot in one transaction and returns it
// with the server-assigned OrderID and CreatedAt populated.
func (r *orderRepository) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error: cannot begin transaction")
		return models.Order{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, createOrder, order.UserID, order.Total)
	if err := row.Scan(&order.OrderID, &order.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "*orderRepository.CreateOrder").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: inserting order")
		return models.Order{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(order.Items) > 0 {
		query, args, err := buildInsertOrderItems(order.OrderID, order.Items)
		if err != nil {
			log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error: building insert query")
			return models.Order{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error: inserting order items")
			return models.Order{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error: committing transaction")
		return models.Order{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return order, nil
}

// FindOrdersByUserID returns the user's full order history, newest first,
// with every order's item snapshot attached. The snapshots for all orders
// are loaded in a single follow-up query.
func (r *orderRepository) FindOrdersByUserID(ctx context.Context, userID int64) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findOrdersByUserID, userID)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.FindOrdersByUserID").Msg("error: querying orders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0)
	orderIndex := make(map[int64]int)
	orderIDs := make([]int64, 0)

	for rows.Next() {
		var order models.Order
		if err := rows.Scan(&order.OrderID, &order.UserID, &order.Total, &order.CreatedAt); err != nil {
			log.Err(err).Str("func", "*orderRepository.FindOrdersByUserID").Msg("error: scanning order row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		order.Items = make([]models.Item, 0)

		orderIndex[order.OrderID] = len(orders)
		orderIDs = append(orderIDs, order.OrderID)
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(orders) == 0 {
		return orders, nil
	}

	query, args, err := buildFindOrderItems(orderIDs)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.FindOrdersByUserID").Msg("error: building items query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	itemRows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.FindOrdersByUserID").Msg("error: querying order items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID int64
		var item models.Item
		if err := itemRows.Scan(&orderID, &item.ItemID, &item.Name, &item.Price, &item.Description); err != nil {
			log.Err(err).Str("func", "*orderRepository.FindOrdersByUserID").Msg("error: scanning order item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		idx := orderIndex[orderID]
		orders[idx].Items = append(orders[idx].Items, item)
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return orders, nil
}
