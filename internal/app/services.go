// Package app provides service initialization.
package app

import (
	"github.com/guttosm/cardapio-service/config"
	"github.com/guttosm/cardapio-service/internal/domain/model"
	"github.com/guttosm/cardapio-service/internal/repository"
	"github.com/guttosm/cardapio-service/internal/service"
	"github.com/guttosm/cardapio-service/internal/service/cache"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Stores groups the persistence the services run on.
type Stores struct {
	Products repository.ProductStore
	Carts    repository.CartStore
	Orders   repository.OrderStore
	Settings repository.SettingsStore
}

// InitializeStores returns the MongoDB stores, or in-memory stores seeded with a demo menu
// when the database is disabled.
func InitializeStores(db *DatabaseComponents) Stores {
	if db != nil {
		return Stores{Products: db.Products, Carts: db.Carts, Orders: db.Orders, Settings: db.Settings}
	}
	log.Warn().Msg("Database disabled - carts, orders and settings are kept in memory")
	return Stores{
		Products: repository.NewMemoryProductStore(demoMenu()...),
		Carts:    repository.NewMemoryCartStore(),
		Orders:   repository.NewMemoryOrderStore(),
		Settings: repository.NewMemorySettingsStore(),
	}
}

// ServiceComponents holds the storefront services.
type ServiceComponents struct {
	Catalog      service.CatalogService
	Selections   service.SelectionService
	Carts        service.CartService
	Checkout     service.CheckoutService
	ProductAdmin service.ProductAdminService
	Settings     service.SettingsService
}

// InitializeServices wires the services over stores. Cart, selection and checkout share one
// in-flight guard so a cart is never mutated by two operations at once.
func InitializeServices(cfg config.Config, stores Stores) *ServiceComponents {
	guard := service.NewInFlight()

	var catalogOpts []service.CatalogOption
	if cfg.Cache.Size > 0 {
		catalogOpts = append(catalogOpts, service.WithCatalogCache(
			cache.NewSharded[[]model.Product]("catalog", cfg.Cache.Size, cfg.Cache.TTL, 4),
		))
	}
	catalog := service.NewCatalogService(stores.Products, catalogOpts...)

	carts := service.NewCartService(stores.Carts,
		service.WithCartGuard(guard),
		service.WithDefaultMaxQuantity(cfg.Store.DefaultMaxQuantity),
		service.WithDeliveryFee(cfg.Store.DeliveryFee),
	)

	selectionOpts := []service.SelectionOption{
		service.WithSelectionGuard(guard),
		service.WithNotesMaxLength(cfg.Store.NotesMaxLength),
	}
	if cfg.Cache.SessionTTL > 0 {
		selectionOpts = append(selectionOpts, service.WithSessionStore(
			cache.NewSharded[*model.Selection]("sessions", service.DefaultSessionCapacity, cfg.Cache.SessionTTL, 16),
		))
	}

	return &ServiceComponents{
		Catalog:    catalog,
		Selections: service.NewSelectionService(stores.Products, carts, selectionOpts...),
		Carts:      carts,
		Checkout: service.NewCheckoutService(stores.Carts, stores.Orders, stores.Products,
			service.WithCheckoutGuard(guard),
			service.WithOrderDeliveryFee(cfg.Store.DeliveryFee),
			service.WithOrderTZOffset(cfg.Store.OrderTZOffset),
			service.WithOrderIDPrefix(cfg.Store.OrderIDPrefix),
		),
		ProductAdmin: service.NewProductAdminService(stores.Products,
			service.WithProductGuard(guard),
			service.WithCatalogInvalidation(catalog),
		),
		Settings: service.NewSettingsService(stores.Settings),
	}
}

// demoMenu is the catalog served when running without a database.
func demoMenu() []model.Product {
	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	return []model.Product{
		{ID: "1", Name: "Pizza Calabresa", Description: "Calabresa, cebola e azeitonas", Price: price("40"), Quantity: 20,
			Category: "comida", Active: true, Kind: model.KindNormal, MaxFlavors: 2, Size: "Grande"},
		{ID: "2", Name: "Pizza Margherita", Description: "Mussarela, tomate e manjericão", Price: price("35"), Quantity: 20,
			Category: "comida", Active: true, Kind: model.KindNormal, MaxFlavors: 2, Size: "Grande"},
		{ID: "3", Name: "Pizza Frango com Catupiry", Price: price("45"), Quantity: 15,
			Category: "comida", Active: true, Kind: model.KindNormal, MaxFlavors: 2, Size: "Grande"},
		{ID: "4", Name: "Suco de Laranja", Price: price("8"), Quantity: 30,
			Category: "bebida", Active: true, Kind: model.KindNormal, MaxFlavors: 1, Size: "500ml"},
		{ID: "5", Name: "Pudim", Price: price("12"), Quantity: 10,
			Category: "sobremesa", Active: true, Kind: model.KindNormal, MaxFlavors: 1},
		{ID: "6", Name: "Bacon", Price: price("4"), Quantity: 50,
			Category: model.AddonCategory, Active: true, Kind: model.KindAddon, AddonCategories: []string{"comida"}},
		{ID: "7", Name: "Borda recheada", Price: price("6"), Quantity: 50,
			Category: model.AddonCategory, Active: true, Kind: model.KindAddon, AddonCategories: []string{"comida"}},
	}
}
