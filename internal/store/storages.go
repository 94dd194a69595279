package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-keeper/internal/config"
	"github.com/MKhiriev/go-shop-keeper/internal/logger"
)

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	UserRepository  UserRepository
	ItemRepository  ItemRepository
	CartRepository  CartRepository
	OrderRepository OrderRepository

	db *DB
}

// NewStorages connects to the configured database backend, applies pending
// migrations, and wires all repositories onto the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	switch cfg.DB.Driver {
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		ItemRepository:  NewItemRepository(db, log),
		CartRepository:  NewCartRepository(db, log),
		OrderRepository: NewOrderRepository(db, log),
		db:              db,
	}, nil
}

// Close releases the underlying database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
