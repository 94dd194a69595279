package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/models"
)

// itemRepository is the SQL-backed implementation of [ItemRepository].
// The catalog is read-only at runtime; items are created by migrations.
type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

// ListItems returns the whole catalog ordered by identifier.
func (r *itemRepository) ListItems(ctx context.Context) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listItems)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error: querying items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// FindItemByID retrieves a single catalog entry.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoItemWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *itemRepository) FindItemByID(ctx context.Context, itemID int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	var item models.Item
	row := r.db.QueryRowContext(ctx, findItemByID, itemID)

	if err := row.Scan(&item.ItemID, &item.Name, &item.Price, &item.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrNoItemWasFound
		}

		log.Err(err).Str("func", "*itemRepository.FindItemByID").Msg("error: scanning item row")
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return item, nil
}

// FindItemsByName returns all catalog entries with the exact given name.
// An empty slice is a valid result; mapping it to a not-found outcome is the
// caller's decision.
func (r *itemRepository) FindItemsByName(ctx context.Context, name string) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindItemsByName(name)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.FindItemsByName").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.FindItemsByName").Msg("error: querying items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanItems(rows)
}

func scanItems(rows *sql.Rows) ([]models.Item, error) {
	items := make([]models.Item, 0)
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ItemID, &item.Name, &item.Price, &item.Description); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}
