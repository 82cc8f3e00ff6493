package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/cardapio-service/internal/domain/model"
	"github.com/guttosm/cardapio-service/internal/metrics"
	"github.com/guttosm/cardapio-service/internal/repository"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	// DefaultMaxQuantity caps lines that carry no stock limit.
	DefaultMaxQuantity = 99
)

// DefaultDeliveryFee is the flat fee added to every order.
var DefaultDeliveryFee = decimal.RequireFromString("5.00")

// CartTotals are derived from the lines on every read.
type CartTotals struct {
	ItemCount   int
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
}

// AddOutcome tells whether Add appended a line or merged into an existing one.
type AddOutcome string

const (
	AddAppended AddOutcome = "appended"
	AddMerged   AddOutcome = "merged"
)

// CartService defines cart operations. Every mutation is a read-modify-write on the cart store.
type CartService interface {
	Create(ctx context.Context) (*model.Cart, error)
	Get(ctx context.Context, cartID string) (*model.Cart, error)
	Add(ctx context.Context, cartID string, item model.LineItem) (*model.Cart, AddOutcome, error)
	Increment(ctx context.Context, cartID string, index, delta int) (*model.Cart, error)
	Remove(ctx context.Context, cartID string, index int) (*model.Cart, error)
	Clear(ctx context.Context, cartID string) (*model.Cart, error)
	History(ctx context.Context, cartID string) ([]model.Order, error)
	Totals(cart *model.Cart) CartTotals
}

// CartOption configures a CartServiceImpl.
type CartOption func(*CartServiceImpl)

// CartServiceImpl implements CartService.
type CartServiceImpl struct {
	store       repository.CartStore
	guard       *InFlight
	defaultMax  int
	deliveryFee decimal.Decimal
	newID       func() string
}

// NewCartService creates a cart service over store.
func NewCartService(store repository.CartStore, opts ...CartOption) *CartServiceImpl {
	s := &CartServiceImpl{
		store:       store,
		guard:       NewInFlight(),
		defaultMax:  DefaultMaxQuantity,
		deliveryFee: DefaultDeliveryFee,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithCartGuard shares an in-flight guard with other services touching carts.
func WithCartGuard(g *InFlight) CartOption {
	return func(s *CartServiceImpl) {
		if g != nil {
			s.guard = g
		}
	}
}

// WithDefaultMaxQuantity overrides the cap used for lines without a limit.
func WithDefaultMaxQuantity(n int) CartOption {
	return func(s *CartServiceImpl) {
		if n > 0 {
			s.defaultMax = n
		}
	}
}

// WithDeliveryFee overrides the delivery fee shown in totals.
func WithDeliveryFee(fee decimal.Decimal) CartOption {
	return func(s *CartServiceImpl) {
		if !fee.IsNegative() {
			s.deliveryFee = fee
		}
	}
}

// WithCartIDGenerator replaces the cart id generator.
func WithCartIDGenerator(gen func() string) CartOption {
	return func(s *CartServiceImpl) {
		if gen != nil {
			s.newID = gen
		}
	}
}

func (s *CartServiceImpl) Create(ctx context.Context) (*model.Cart, error) {
	if s.store == nil {
		return nil, ErrRepositoryNotConfigured
	}
	cart := &model.Cart{ID: s.newID(), Items: []model.LineItem{}}
	if err := s.store.Save(ctx, cart); err != nil {
		metrics.RecordCartOperation("create", "error")
		return nil, s.storeError(err)
	}
	metrics.RecordCartOperation("create", "success")
	return cart, nil
}

func (s *CartServiceImpl) Get(ctx context.Context, cartID string) (*model.Cart, error) {
	if s.store == nil {
		return nil, ErrRepositoryNotConfigured
	}
	cart, err := s.store.Load(ctx, cartID)
	if err != nil {
		return nil, remote(err)
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	return cart, nil
}

// Add merges item into an equal entry or appends it. A merge that would pass the item's
// maximum quantity is rejected and nothing is saved.
func (s *CartServiceImpl) Add(ctx context.Context, cartID string, item model.LineItem) (*model.Cart, AddOutcome, error) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	limit := item.Limit(s.defaultMax)
	if item.Quantity > limit {
		metrics.RecordCartOperation("add", "rejected")
		return nil, "", ErrStockExceeded.WithMax(limit)
	}

	var outcome AddOutcome
	cart, err := s.mutate(ctx, "add", cartID, func(c *model.Cart) error {
		for i := range c.Items {
			existing := &c.Items[i]
			if !existing.SameEntry(item) {
				continue
			}
			if existing.Quantity+item.Quantity > limit {
				return ErrStockExceeded.WithMax(limit)
			}
			existing.Quantity += item.Quantity
			existing.MaxQuantity = item.MaxQuantity
			outcome = AddMerged
			return nil
		}
		c.Items = append(c.Items, item)
		outcome = AddAppended
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	log.Info().
		Str("cart_id", cartID).
		Str("product_id", item.BaseProductID()).
		Str("outcome", string(outcome)).
		Msg("cart item added")
	return cart, outcome, nil
}

// Increment changes the quantity of the line at index by delta. Going below one removes the line.
func (s *CartServiceImpl) Increment(ctx context.Context, cartID string, index, delta int) (*model.Cart, error) {
	return s.mutate(ctx, "increment", cartID, func(c *model.Cart) error {
		if index < 0 || index >= len(c.Items) {
			return ErrCartItemNotFound
		}
		item := &c.Items[index]
		next := item.Quantity + delta
		if next < 1 {
			c.Items = append(c.Items[:index], c.Items[index+1:]...)
			return nil
		}
		if limit := item.Limit(s.defaultMax); next > limit {
			return ErrStockExceeded.WithMax(limit)
		}
		item.Quantity = next
		return nil
	})
}

// Remove deletes the line at index.
func (s *CartServiceImpl) Remove(ctx context.Context, cartID string, index int) (*model.Cart, error) {
	return s.mutate(ctx, "remove", cartID, func(c *model.Cart) error {
		if index < 0 || index >= len(c.Items) {
			return ErrCartItemNotFound
		}
		c.Items = append(c.Items[:index], c.Items[index+1:]...)
		return nil
	})
}

// Clear empties the cart and keeps its order history.
func (s *CartServiceImpl) Clear(ctx context.Context, cartID string) (*model.Cart, error) {
	return s.mutate(ctx, "clear", cartID, func(c *model.Cart) error {
		c.Items = []model.LineItem{}
		return nil
	})
}

// History returns the orders placed from this cart, oldest first.
func (s *CartServiceImpl) History(ctx context.Context, cartID string) ([]model.Order, error) {
	cart, err := s.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return append([]model.Order{}, cart.Orders...), nil
}

// Totals derives the cart summary. Only the subtotal is rounded, never the line totals.
func (s *CartServiceImpl) Totals(cart *model.Cart) CartTotals {
	subtotal := cart.Subtotal().Round(2)
	return CartTotals{
		ItemCount:   cart.ItemCount(),
		Subtotal:    subtotal,
		DeliveryFee: s.deliveryFee,
		Total:       subtotal.Add(s.deliveryFee),
	}
}

// mutate loads the cart, applies fn to a copy and saves it under the version read.
// Nothing is written when fn fails.
func (s *CartServiceImpl) mutate(ctx context.Context, op, cartID string, fn func(*model.Cart) error) (*model.Cart, error) {
	if s.store == nil {
		return nil, ErrRepositoryNotConfigured
	}
	release, err := s.guard.Acquire(OpCart, cartID)
	if err != nil {
		metrics.RecordCartOperation(op, "in_flight")
		return nil, err
	}
	defer release()

	start := time.Now()
	loaded, err := s.store.Load(ctx, cartID)
	if err != nil {
		metrics.RecordCartOperation(op, "error")
		return nil, remote(err)
	}
	if loaded == nil {
		metrics.RecordCartOperation(op, "not_found")
		return nil, ErrCartNotFound
	}

	cart := loaded.Clone()
	if err := fn(cart); err != nil {
		metrics.RecordCartOperation(op, "rejected")
		return nil, err
	}
	if err := s.store.Save(ctx, cart); err != nil {
		metrics.RecordCartOperation(op, "error")
		return nil, s.storeError(err)
	}

	metrics.RecordCartOperation(op, "success")
	log.Debug().
		Str("cart_id", cartID).
		Str("operation", op).
		Int64("version", cart.Version).
		Dur("duration", time.Since(start)).
		Msg("cart saved")
	return cart, nil
}

func (s *CartServiceImpl) storeError(err error) error {
	if isVersionConflict(err) {
		return ErrCartConflict.Wrap(err)
	}
	return remote(err)
}

var _ CartService = (*CartServiceImpl)(nil)
