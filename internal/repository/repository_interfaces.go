package repository

import (
	"context"

	"github.com/guttosm/cardapio-service/internal/domain/model"
)

// ProductStore is the catalog data source.
type ProductStore interface {
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindByIDs(ctx context.Context, ids []string) ([]model.Product, error)
	FindActive(ctx context.Context) ([]model.Product, error)
	FindFlavorCandidates(ctx context.Context, base model.Product) ([]model.Product, error)
	FindActiveAddons(ctx context.Context) ([]model.Product, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	Insert(ctx context.Context, p *model.Product) (*model.Product, error)
	Update(ctx context.Context, p *model.Product) (*model.Product, error)
	SetStatus(ctx context.Context, id string, active bool) (*model.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// CartStore persists carts. Save must fail with ErrCartVersionConflict when the stored
// version differs from cart.Version, and must advance cart.Version on success.
type CartStore interface {
	Load(ctx context.Context, id string) (*model.Cart, error)
	Save(ctx context.Context, cart *model.Cart) error
	Delete(ctx context.Context, id string) error
}

// OrderStore persists submitted orders.
type OrderStore interface {
	Insert(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, id string) (*model.Order, error)
	ListByCart(ctx context.Context, cartID string, limit int) ([]model.Order, error)
	Delete(ctx context.Context, id string) error
}

// SettingsStore persists the store settings. Getters return nil when nothing was saved.
type SettingsStore interface {
	Categories(ctx context.Context) ([]model.Category, error)
	SaveCategories(ctx context.Context, categories []model.Category) error
	Sizes(ctx context.Context) ([]model.SizeOption, error)
	SaveSizes(ctx context.Context, sizes []model.SizeOption) error
	FlavorConfig(ctx context.Context) (*model.FlavorConfig, error)
	SaveFlavorConfig(ctx context.Context, cfg model.FlavorConfig) error
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *model.LogEntry) error
	CreateMany(ctx context.Context, entries []*model.LogEntry) error
	Query(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error)
	Count(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}

var (
	_ ProductStore            = (*ProductRepository)(nil)
	_ ProductStore            = (*MemoryProductStore)(nil)
	_ CartStore               = (*CartRepository)(nil)
	_ CartStore               = (*MemoryCartStore)(nil)
	_ OrderStore              = (*OrderRepository)(nil)
	_ OrderStore              = (*MemoryOrderStore)(nil)
	_ SettingsStore           = (*SettingsRepository)(nil)
	_ SettingsStore           = (*MemorySettingsStore)(nil)
	_ LogsRepositoryInterface = (*LogsRepository)(nil)
)
