package repository

import (
	"context"
	"errors"

	"github.com/guttosm/cardapio-service/internal/circuitbreaker"
	"github.com/guttosm/cardapio-service/internal/domain/model"
)

// CountsAsFailure tells a breaker which store errors signal an unhealthy database.
// Version conflicts and cancelled requests are caller outcomes, not outages.
func CountsAsFailure(err error) bool {
	return !errors.Is(err, ErrCartVersionConflict) &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}

// ProductStoreWithCircuitBreaker wraps a ProductStore with circuit breaker protection.
type ProductStoreWithCircuitBreaker struct {
	repo ProductStore
	cb   *circuitbreaker.CircuitBreaker
}

// NewProductStoreWithCircuitBreaker creates the wrapper.
func NewProductStoreWithCircuitBreaker(repo ProductStore, cb *circuitbreaker.CircuitBreaker) *ProductStoreWithCircuitBreaker {
	return &ProductStoreWithCircuitBreaker{repo: repo, cb: cb}
}

func (r *ProductStoreWithCircuitBreaker) FindByID(ctx context.Context, id string) (*model.Product, error) {
	return circuitbreaker.Run(ctx, r.cb, func() (*model.Product, error) { return r.repo.FindByID(ctx, id) })
}

func (r *ProductStoreWithCircuitBreaker) FindByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	return circuitbreaker.Run(ctx, r.cb, func() ([]model.Product, error) { return r.repo.FindByIDs(ctx, ids) })
}

func (r *ProductStoreWithCircuitBreaker) FindActive(ctx context.Context) ([]model.Product, error) {
	return circuitbreaker.Run(ctx, r.cb, func() ([]model.Product, error) { return r.repo.FindActive(ctx) })
}

func (r *ProductStoreWithCircuitBreaker) FindFlavorCandidates(ctx context.Context, base model.Product) ([]model.Product, error) {
	return circuitbreaker.Run(ctx, r.cb, func() ([]model.Product, error) { return r.repo.FindFlavorCandidates(ctx, base) })
}

func (r *ProductStoreWithCircuitBreaker) FindActiveAddons(ctx context.Context) ([]model.Product, error) {
	return circuitbreaker.Run(ctx, r.cb, func() ([]model.Product, error) { return r.repo.FindActiveAddons(ctx) })
}

func (r *ProductStoreWithCircuitBreaker) FindAll(ctx context.Context) ([]model.Product, error) {
	return circuitbreaker.Run(ctx, r.cb, func() ([]model.Product, error) { return r.repo.FindAll(ctx) })
}

func (r *ProductStoreWithCircuitBreaker) Insert(ctx context.Context, p *model.Product) (*model.Product, error) {
	return circuitbreaker.Run(ctx, r.cb, func() (*model.Product, error) { return r.repo.Insert(ctx, p) })
}

func (r *ProductStoreWithCircuitBreaker) Update(ctx context.Context, p *model.Product) (*model.Product, error) {
	return circuitbreaker.Run(ctx, r.cb, func() (*model.Product, error) { return r.repo.Update(ctx, p) })
}

func (r *ProductStoreWithCircuitBreaker) SetStatus(ctx context.Context, id string, active bool) (*model.Product, error) {
	return circuitbreaker.Run(ctx, r.cb, func() (*model.Product, error) { return r.repo.SetStatus(ctx, id, active) })
}

func (r *ProductStoreWithCircuitBreaker) Delete(ctx context.Context, id string) (bool, error) {
	return circuitbreaker.Run(ctx, r.cb, func() (bool, error) { return r.repo.Delete(ctx, id) })
}

// GetCircuitBreaker returns the underlying breaker.
func (r *ProductStoreWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.cb
}

// CartStoreWithCircuitBreaker wraps a CartStore with circuit breaker protection.
type CartStoreWithCircuitBreaker struct {
	repo CartStore
	cb   *circuitbreaker.CircuitBreaker
}

// NewCartStoreWithCircuitBreaker creates the wrapper.
func NewCartStoreWithCircuitBreaker(repo CartStore, cb *circuitbreaker.CircuitBreaker) *CartStoreWithCircuitBreaker {
	return &CartStoreWithCircuitBreaker{repo: repo, cb: cb}
}

func (r *CartStoreWithCircuitBreaker) Load(ctx context.Context, id string) (*model.Cart, error) {
	return circuitbreaker.Run(ctx, r.cb, func() (*model.Cart, error) { return r.repo.Load(ctx, id) })
}

func (r *CartStoreWithCircuitBreaker) Save(ctx context.Context, cart *model.Cart) error {
	return r.cb.Execute(ctx, func() error { return r.repo.Save(ctx, cart) })
}

func (r *CartStoreWithCircuitBreaker) Delete(ctx context.Context, id string) error {
	return r.cb.Execute(ctx, func() error { return r.repo.Delete(ctx, id) })
}

// OrderStoreWithCircuitBreaker wraps an OrderStore with circuit breaker protection.
type OrderStoreWithCircuitBreaker struct {
	repo OrderStore
	cb   *circuitbreaker.CircuitBreaker
}

// NewOrderStoreWithCircuitBreaker creates the wrapper.
func NewOrderStoreWithCircuitBreaker(repo OrderStore, cb *circuitbreaker.CircuitBreaker) *OrderStoreWithCircuitBreaker {
	return &OrderStoreWithCircuitBreaker{repo: repo, cb: cb}
}

func (r *OrderStoreWithCircuitBreaker) Insert(ctx context.Context, order *model.Order) error {
	return r.cb.Execute(ctx, func() error { return r.repo.Insert(ctx, order) })
}

func (r *OrderStoreWithCircuitBreaker) FindByID(ctx context.Context, id string) (*model.Order, error) {
	return circuitbreaker.Run(ctx, r.cb, func() (*model.Order, error) { return r.repo.FindByID(ctx, id) })
}

func (r *OrderStoreWithCircuitBreaker) ListByCart(ctx context.Context, cartID string, limit int) ([]model.Order, error) {
	return circuitbreaker.Run(ctx, r.cb, func() ([]model.Order, error) { return r.repo.ListByCart(ctx, cartID, limit) })
}

func (r *OrderStoreWithCircuitBreaker) Delete(ctx context.Context, id string) error {
	return r.cb.Execute(ctx, func() error { return r.repo.Delete(ctx, id) })
}

// SettingsStoreWithCircuitBreaker wraps a SettingsStore. Reads that hit an open circuit
// report "never saved" so the service serves defaults.
type SettingsStoreWithCircuitBreaker struct {
	repo SettingsStore
	cb   *circuitbreaker.CircuitBreaker
}

// NewSettingsStoreWithCircuitBreaker creates the wrapper.
func NewSettingsStoreWithCircuitBreaker(repo SettingsStore, cb *circuitbreaker.CircuitBreaker) *SettingsStoreWithCircuitBreaker {
	return &SettingsStoreWithCircuitBreaker{repo: repo, cb: cb}
}

func (r *SettingsStoreWithCircuitBreaker) Categories(ctx context.Context) ([]model.Category, error) {
	return openAsEmpty(circuitbreaker.Run(ctx, r.cb, func() ([]model.Category, error) { return r.repo.Categories(ctx) }))
}

func (r *SettingsStoreWithCircuitBreaker) SaveCategories(ctx context.Context, categories []model.Category) error {
	return r.cb.Execute(ctx, func() error { return r.repo.SaveCategories(ctx, categories) })
}

func (r *SettingsStoreWithCircuitBreaker) Sizes(ctx context.Context) ([]model.SizeOption, error) {
	return openAsEmpty(circuitbreaker.Run(ctx, r.cb, func() ([]model.SizeOption, error) { return r.repo.Sizes(ctx) }))
}

func (r *SettingsStoreWithCircuitBreaker) SaveSizes(ctx context.Context, sizes []model.SizeOption) error {
	return r.cb.Execute(ctx, func() error { return r.repo.SaveSizes(ctx, sizes) })
}

func (r *SettingsStoreWithCircuitBreaker) FlavorConfig(ctx context.Context) (*model.FlavorConfig, error) {
	return openAsEmpty(circuitbreaker.Run(ctx, r.cb, func() (*model.FlavorConfig, error) { return r.repo.FlavorConfig(ctx) }))
}

func (r *SettingsStoreWithCircuitBreaker) SaveFlavorConfig(ctx context.Context, cfg model.FlavorConfig) error {
	return r.cb.Execute(ctx, func() error { return r.repo.SaveFlavorConfig(ctx, cfg) })
}

func openAsEmpty[T any](v T, err error) (T, error) {
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		var zero T
		return zero, nil
	}
	return v, err
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository. Writes are dropped while the circuit is open.
type LogsRepositoryWithCircuitBreaker struct {
	repo LogsRepositoryInterface
	cb   *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates the wrapper.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{repo: repo, cb: cb}
}

func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *model.LogEntry) error {
	err := r.cb.Execute(ctx, func() error { return r.repo.Create(ctx, entry) })
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*model.LogEntry) error {
	err := r.cb.Execute(ctx, func() error { return r.repo.CreateMany(ctx, entries) })
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	return circuitbreaker.Run(ctx, r.cb, func() ([]model.LogEntry, error) { return r.repo.Query(ctx, opts) })
}

func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	return circuitbreaker.Run(ctx, r.cb, func() (int64, error) { return r.repo.Count(ctx, opts) })
}

// GetCircuitBreaker returns the underlying breaker.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.cb
}

var (
	_ ProductStore            = (*ProductStoreWithCircuitBreaker)(nil)
	_ CartStore               = (*CartStoreWithCircuitBreaker)(nil)
	_ OrderStore              = (*OrderStoreWithCircuitBreaker)(nil)
	_ SettingsStore           = (*SettingsStoreWithCircuitBreaker)(nil)
	_ LogsRepositoryInterface = (*LogsRepositoryWithCircuitBreaker)(nil)
)
