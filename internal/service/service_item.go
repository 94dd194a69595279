package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/store"
	"github.com/MKhiriev/go-shop-keeper/models"
)

// itemService is the concrete implementation of ItemService.
// The catalog is read-only at runtime; items are seeded by migrations.
type itemService struct {
	itemRepository store.ItemRepository

	logger *logger.Logger
}

func NewItemService(itemRepository store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		logger:         logger,
	}
}

// ListItems returns the full catalog ordered by item ID.
func (i *itemService) ListItems(ctx context.Context) ([]models.Item, error) {
	items, err := i.itemRepository.ListItems(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("catalog listing failed")
		return nil, fmt.Errorf("catalog listing failed: %w", err)
	}

	return items, nil
}

// GetItemByID returns a single catalog item.
// Returns a wrapped store.ErrNoItemWasFound if no item carries the ID.
func (i *itemService) GetItemByID(ctx context.Context, itemID int64) (models.Item, error) {
	item, err := i.itemRepository.FindItemByID(ctx, itemID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", itemID).Msg("item search by id failed")
		return models.Item{}, fmt.Errorf("item search by id failed: %w", err)
	}

	return item, nil
}

// GetItemsByName returns every catalog item with the exact given name.
// An empty result is reported as a wrapped store.ErrNoItemWasFound so that
// callers treat an unknown name the same way as an unknown ID.
func (i *itemService) GetItemsByName(ctx context.Context, name string) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	if name == "" {
		return nil, ErrInvalidDataProvided
	}

	items, err := i.itemRepository.FindItemsByName(ctx, name)
	if err != nil {
		log.Err(err).Str("name", name).Msg("item search by name failed")
		return nil, fmt.Errorf("item search by name failed: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no items named %q: %w", name, store.ErrNoItemWasFound)
	}

	return items, nil
}
