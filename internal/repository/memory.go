package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/guttosm/cardapio-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryCartStore is the in-process cart store used when MongoDB is disabled.
// It applies the same version check as CartRepository.
type MemoryCartStore struct {
	mu    sync.RWMutex
	carts map[string]*model.Cart
}

// NewMemoryCartStore creates an empty in-process cart store.
func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[string]*model.Cart)}
}

// Load returns a copy of the cart or nil.
func (s *MemoryCartStore) Load(_ context.Context, id string) (*model.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.carts[id]
	if !ok {
		return nil, nil
	}
	return c.Clone(), nil
}

// Save stores a copy of the cart when its version matches.
func (s *MemoryCartStore) Save(_ context.Context, cart *model.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, exists := s.carts[cart.ID]
	switch {
	case cart.Version == 0 && exists:
		return ErrCartVersionConflict
	case cart.Version != 0 && (!exists || current.Version != cart.Version):
		return ErrCartVersionConflict
	}

	now := time.Now().UTC()
	cart.Version++
	cart.UpdatedAt = now
	if cart.CreatedAt.IsZero() {
		cart.CreatedAt = now
	}
	s.carts[cart.ID] = cart.Clone()
	return nil
}

// Delete drops the cart.
func (s *MemoryCartStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.carts, id)
	s.mu.Unlock()
	return nil
}

// MemorySettingsStore keeps settings in process memory.
type MemorySettingsStore struct {
	mu         sync.RWMutex
	categories []model.Category
	sizes      []model.SizeOption
	flavors    *model.FlavorConfig
}

// NewMemorySettingsStore creates an empty in-process settings store.
func NewMemorySettingsStore() *MemorySettingsStore {
	return &MemorySettingsStore{}
}

// Categories returns the saved categories or nil.
func (s *MemorySettingsStore) Categories(_ context.Context) ([]model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.categories == nil {
		return nil, nil
	}
	return append([]model.Category{}, s.categories...), nil
}

// SaveCategories replaces the categories.
func (s *MemorySettingsStore) SaveCategories(_ context.Context, categories []model.Category) error {
	s.mu.Lock()
	s.categories = append([]model.Category{}, categories...)
	s.mu.Unlock()
	return nil
}

// Sizes returns the saved sizes or nil.
func (s *MemorySettingsStore) Sizes(_ context.Context) ([]model.SizeOption, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.sizes == nil {
		return nil, nil
	}
	return append([]model.SizeOption{}, s.sizes...), nil
}

// SaveSizes replaces the sizes.
func (s *MemorySettingsStore) SaveSizes(_ context.Context, sizes []model.SizeOption) error {
	s.mu.Lock()
	s.sizes = append([]model.SizeOption{}, sizes...)
	s.mu.Unlock()
	return nil
}

// FlavorConfig returns the saved flavor configuration or nil.
func (s *MemorySettingsStore) FlavorConfig(_ context.Context) (*model.FlavorConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.flavors == nil {
		return nil, nil
	}
	cfg := *s.flavors
	return &cfg, nil
}

// SaveFlavorConfig replaces the flavor configuration.
func (s *MemorySettingsStore) SaveFlavorConfig(_ context.Context, cfg model.FlavorConfig) error {
	s.mu.Lock()
	s.flavors = &cfg
	s.mu.Unlock()
	return nil
}

// MemoryProductStore is the in-process catalog used when MongoDB is disabled.
type MemoryProductStore struct {
	mu       sync.RWMutex
	products map[string]model.Product
}

// NewMemoryProductStore creates a catalog holding the given products.
func NewMemoryProductStore(products ...model.Product) *MemoryProductStore {
	s := &MemoryProductStore{products: make(map[string]model.Product, len(products))}
	for _, p := range products {
		if p.ID == "" {
			p.ID = primitive.NewObjectID().Hex()
		}
		s.products[p.ID] = p
	}
	return s
}

// FindByID returns the product or nil.
func (s *MemoryProductStore) FindByID(_ context.Context, id string) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// FindByIDs returns the known products among ids.
func (s *MemoryProductStore) FindByIDs(_ context.Context, ids []string) ([]model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []model.Product{}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if p, ok := s.products[id]; ok && !seen[id] {
			seen[id] = true
			out = append(out, p)
		}
	}
	return out, nil
}

// FindActive returns active, non add-on products ordered by name.
func (s *MemoryProductStore) FindActive(_ context.Context) ([]model.Product, error) {
	return s.filter(func(p model.Product) bool { return p.Active && !p.IsAddon() }), nil
}

// FindFlavorCandidates returns active products of the base category that can be combined with it.
func (s *MemoryProductStore) FindFlavorCandidates(_ context.Context, base model.Product) ([]model.Product, error) {
	return s.filter(func(p model.Product) bool {
		return p.Active && !p.IsAddon() && p.Category == base.Category && p.ID != base.ID
	}), nil
}

// FindActiveAddons returns every active add-on ordered by name.
func (s *MemoryProductStore) FindActiveAddons(_ context.Context) ([]model.Product, error) {
	return s.filter(func(p model.Product) bool { return p.Active && p.IsAddon() }), nil
}

// FindAll returns every product ordered by name.
func (s *MemoryProductStore) FindAll(_ context.Context) ([]model.Product, error) {
	return s.filter(func(model.Product) bool { return true }), nil
}

// Insert stores a new product. An empty id gets a fresh one.
func (s *MemoryProductStore) Insert(_ context.Context, p *model.Product) (*model.Product, error) {
	if p.ID == "" {
		p.ID = primitive.NewObjectID().Hex()
	}
	s.mu.Lock()
	s.products[p.ID] = *p
	s.mu.Unlock()
	return p, nil
}

// Update replaces a product. Returns nil when the id is unknown.
func (s *MemoryProductStore) Update(_ context.Context, p *model.Product) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[p.ID]; !ok {
		return nil, nil
	}
	s.products[p.ID] = *p
	out := *p
	return &out, nil
}

// SetStatus switches a product on or off. Returns nil when the id is unknown.
func (s *MemoryProductStore) SetStatus(_ context.Context, id string, active bool) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	p.Active = active
	s.products[id] = p
	return &p, nil
}

// Delete removes a product and reports whether it existed.
func (s *MemoryProductStore) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.products[id]
	delete(s.products, id)
	return ok, nil
}

// SetQuantity changes the stock of a product. Used by tests and seeding.
func (s *MemoryProductStore) SetQuantity(id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.products[id]; ok {
		p.Quantity = quantity
		s.products[id] = p
	}
}

func (s *MemoryProductStore) filter(keep func(model.Product) bool) []model.Product {
	s.mu.RLock()
	out := []model.Product{}
	for _, p := range s.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// MemoryOrderStore keeps orders in process memory.
type MemoryOrderStore struct {
	mu     sync.RWMutex
	orders []model.Order
}

// NewMemoryOrderStore creates an empty in-process order store.
func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{}
}

// Insert appends an order.
func (s *MemoryOrderStore) Insert(_ context.Context, order *model.Order) error {
	s.mu.Lock()
	s.orders = append(s.orders, *order)
	s.mu.Unlock()
	return nil
}

// FindByID returns the order or nil.
func (s *MemoryOrderStore) FindByID(_ context.Context, id string) (*model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			found := o
			return &found, nil
		}
	}
	return nil, nil
}

// ListByCart returns the orders of a cart, newest first.
func (s *MemoryOrderStore) ListByCart(_ context.Context, cartID string, limit int) ([]model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []model.Order{}
	for i := len(s.orders) - 1; i >= 0; i-- {
		if s.orders[i].CartID != cartID {
			continue
		}
		out = append(out, s.orders[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// Delete removes an order.
func (s *MemoryOrderStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.orders {
		if o.ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			break
		}
	}
	return nil
}
