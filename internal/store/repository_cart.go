// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/models"
)

// cartRepository is the SQL-backed implementation of [CartRepository].
//
// A cart is stored as one row in "carts" (identity, owner, running total) and
// one row per slot in "cart_items", ordered by position. SaveCart rewrites
// the slot rows wholesale so the stored sequence always mirrors the
// in-memory sequence the service layer mutated.
type cartRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCartRepository constructs a [CartRepository] backed by the provided
// database connection and logger.
func NewCartRepository(db *DB, logger *logger.Logger) CartRepository {
	logger.Debug().Msg("creating cart repository")
	return &cartRepository{
		db:     db,
		logger: logger,
	}
}

// FindCartByUserID loads the user's cart row and its full ordered item
// sequence.
//
// Error handling:
//   - [sql.ErrNoRows] on the cart row → [ErrNoCartWasFound].
//   - Any other driver-level error → wrapped low-level sentinel.
func (r *cartRepository) FindCartByUserID(ctx context.Context, userID int64) (models.Cart, error) {
	log := logger.FromContext(ctx)

	var cart models.Cart
	row := r.db.QueryRowContext(ctx, findCartByUserID, userID)
	if err := row.Scan(&cart.CartID, &cart.UserID, &cart.Total); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Cart{}, ErrNoCartWasFound
		}

		log.Err(err).Str("func", "*cartRepository.FindCartByUserID").Msg("error: scanning cart row")
		return models.Cart{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	rows, err := r.db.QueryContext(ctx, findCartItems, cart.CartID)
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.FindCartByUserID").Msg("error: querying cart items")
		return models.Cart{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	cart.Items, err = scanItems(rows)
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.FindCartByUserID").Msg("error: scanning cart items")
		return models.Cart{}, err
	}

	return cart, nil
}

// SaveCart persists the cart's total and item sequence in one transaction:
// the total is updated in place, the old slot rows are deleted, and the
// current sequence is bulk-inserted with its positions.
func (r *cartRepository) SaveCart(ctx context.Context, cart models.Cart) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.SaveCart").Msg("error: cannot begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, updateCartTotal, cart.Total, cart.CartID)
	if err != nil {
		r.logExecError(log, "*cartRepository.SaveCart", err)
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrCartNotSaved
	}

	if _, err := tx.ExecContext(ctx, deleteCartItems, cart.CartID); err != nil {
		r.logExecError(log, "*cartRepository.SaveCart", err)
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(cart.Items) > 0 {
		query, args, err := buildInsertCartItems(cart.CartID, cart.Items)
		if err != nil {
			log.Err(err).Str("func", "*cartRepository.SaveCart").Msg("error: building insert query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			r.logExecError(log, "*cartRepository.SaveCart", err)
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*cartRepository.SaveCart").Msg("error: committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// logExecError logs a failed statement together with its retryability class,
// so operators can tell transient storage trouble from real bugs.
func (r *cartRepository) logExecError(log *logger.Logger, fn string, err error) {
	log.Err(err).
		Str("func", fn).
		Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
		Msg("error: executing statement")
}
