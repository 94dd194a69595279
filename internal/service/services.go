package service

import (
	"fmt"

	"github.com/MKhiriev/go-shop-keeper/internal/config"
	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/store"
)

// Services aggregates every service the transport layer depends on.
type Services struct {
	AuthService    AuthService
	UserService    UserService
	ItemService    ItemService
	CartService    CartService
	OrderService   OrderService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		UserService:    NewUserService(storages.UserRepository, cfg.App, logger),
		ItemService:    NewItemService(storages.ItemRepository, logger),
		CartService:    NewCartService(storages, logger),
		OrderService:   NewOrderService(storages, logger),
		AppInfoService: appInfoService,
	}, nil
}
