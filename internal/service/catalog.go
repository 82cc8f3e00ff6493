package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/guttosm/cardapio-service/internal/domain/model"
	"github.com/guttosm/cardapio-service/internal/metrics"
	"github.com/guttosm/cardapio-service/internal/repository"
	"github.com/guttosm/cardapio-service/internal/service/cache"
	"golang.org/x/sync/singleflight"
)

// DefaultCatalogTTL is how long catalog listings are served from memory.
const DefaultCatalogTTL = 30 * time.Second

const (
	catalogKeyProducts = "products"
	catalogKeyAddons   = "addons"
)

// ProductFilter narrows a catalog listing. Empty fields match everything.
type ProductFilter struct {
	Category string
	Size     string
	Search   string
}

// CatalogService serves the storefront catalog.
type CatalogService interface {
	ListProducts(ctx context.Context, filter ProductFilter) ([]model.Product, error)
	Product(ctx context.Context, id string) (*model.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Sizes(ctx context.Context, category string) ([]string, error)
	HasAddons(ctx context.Context, product model.Product) (bool, error)
	Invalidate()
}

// CatalogServiceImpl implements CatalogService with cached listings.
type CatalogServiceImpl struct {
	products repository.ProductStore
	listings cache.Cache[[]model.Product]
	group    singleflight.Group
}

// CatalogOption configures a CatalogServiceImpl.
type CatalogOption func(*CatalogServiceImpl)

// WithCatalogCache replaces the listing cache.
func WithCatalogCache(c cache.Cache[[]model.Product]) CatalogOption {
	return func(s *CatalogServiceImpl) {
		s.listings = c
	}
}

// NewCatalogService creates a catalog service.
func NewCatalogService(products repository.ProductStore, opts ...CatalogOption) *CatalogServiceImpl {
	s := &CatalogServiceImpl{products: products}
	for _, opt := range opts {
		opt(s)
	}
	if s.listings == nil {
		s.listings = cache.NewSharded[[]model.Product]("catalog", 16, DefaultCatalogTTL, 1)
	}
	return s
}

// ListProducts returns active products matching filter, ordered by name.
// Search matches name or description, case-insensitive.
func (s *CatalogServiceImpl) ListProducts(ctx context.Context, filter ProductFilter) ([]model.Product, error) {
	all, err := s.load(ctx, catalogKeyProducts)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]model.Product, 0, len(all))
	for _, p := range all {
		if filter.Category != "" && !strings.EqualFold(p.Category, filter.Category) {
			continue
		}
		if filter.Size != "" && !strings.EqualFold(p.Size, filter.Size) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Product returns one product straight from the store, active or not.
func (s *CatalogServiceImpl) Product(ctx context.Context, id string) (*model.Product, error) {
	if s.products == nil {
		return nil, ErrRepositoryNotConfigured
	}
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, remote(err)
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// Categories returns the distinct categories of active products, sorted.
func (s *CatalogServiceImpl) Categories(ctx context.Context) ([]string, error) {
	all, err := s.load(ctx, catalogKeyProducts)
	if err != nil {
		return nil, err
	}
	return distinct(all, func(p model.Product) string { return p.Category }), nil
}

// Sizes returns the distinct non-empty size labels, optionally within one category.
func (s *CatalogServiceImpl) Sizes(ctx context.Context, category string) ([]string, error) {
	products, err := s.ListProducts(ctx, ProductFilter{Category: category})
	if err != nil {
		return nil, err
	}
	return distinct(products, func(p model.Product) string { return p.Size }), nil
}

// HasAddons reports whether any active, in-stock add-on applies to the product's category.
func (s *CatalogServiceImpl) HasAddons(ctx context.Context, product model.Product) (bool, error) {
	addons, err := s.load(ctx, catalogKeyAddons)
	if err != nil {
		return false, err
	}
	for _, a := range addons {
		if a.InStock() && a.AppliesTo(product.Category) {
			return true, nil
		}
	}
	return false, nil
}

// Invalidate drops every cached listing.
func (s *CatalogServiceImpl) Invalidate() {
	s.listings.Clear()
}

// load serves key from cache, collapsing concurrent misses into one store read.
func (s *CatalogServiceImpl) load(ctx context.Context, key string) ([]model.Product, error) {
	if s.products == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if cached, ok := s.listings.Get(key); ok {
		metrics.RecordCacheOperation("catalog", "get", "hit")
		return cached, nil
	}
	metrics.RecordCacheOperation("catalog", "get", "miss")

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		fetch := s.products.FindActive
		if key == catalogKeyAddons {
			fetch = s.products.FindActiveAddons
		}
		rows, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		s.listings.Set(key, rows)
		return rows, nil
	})
	if err != nil {
		return nil, remote(err)
	}
	return v.([]model.Product), nil
}

func distinct(products []model.Product, field func(model.Product) string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range products {
		v := field(p)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

var _ CatalogService = (*CatalogServiceImpl)(nil)
