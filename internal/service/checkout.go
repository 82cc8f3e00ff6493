package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/guttosm/cardapio-service/internal/domain/model"
	"github.com/guttosm/cardapio-service/internal/metrics"
	"github.com/guttosm/cardapio-service/internal/repository"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	// DefaultOrderIDPrefix starts every order id.
	DefaultOrderIDPrefix = "PED"
	// DefaultOrderTZOffset is the fixed offset used for the order date and time.
	DefaultOrderTZOffset = -3 * time.Hour
)

// CheckoutService turns a cart into an order.
type CheckoutService interface {
	Checkout(ctx context.Context, cartID string) (*model.Order, error)
}

// CheckoutOption configures a CheckoutServiceImpl.
type CheckoutOption func(*CheckoutServiceImpl)

// CheckoutServiceImpl implements CheckoutService.
type CheckoutServiceImpl struct {
	carts       repository.CartStore
	orders      repository.OrderStore
	products    repository.ProductStore
	guard       *InFlight
	deliveryFee decimal.Decimal
	zone        *time.Location
	prefix      string
	now         func() time.Time
	randomDigit func() int
}

// NewCheckoutService creates a checkout service.
func NewCheckoutService(carts repository.CartStore, orders repository.OrderStore, products repository.ProductStore, opts ...CheckoutOption) *CheckoutServiceImpl {
	s := &CheckoutServiceImpl{
		carts:       carts,
		orders:      orders,
		products:    products,
		guard:       NewInFlight(),
		deliveryFee: DefaultDeliveryFee,
		zone:        fixedZone(DefaultOrderTZOffset),
		prefix:      DefaultOrderIDPrefix,
		now:         time.Now,
		randomDigit: func() int { return rand.IntN(1000) },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithCheckoutGuard shares the cart in-flight guard so checkout never interleaves with cart edits.
func WithCheckoutGuard(g *InFlight) CheckoutOption {
	return func(s *CheckoutServiceImpl) {
		if g != nil {
			s.guard = g
		}
	}
}

// WithOrderDeliveryFee overrides the delivery fee.
func WithOrderDeliveryFee(fee decimal.Decimal) CheckoutOption {
	return func(s *CheckoutServiceImpl) {
		if !fee.IsNegative() {
			s.deliveryFee = fee
		}
	}
}

// WithOrderTZOffset sets the offset used for the order date and time.
func WithOrderTZOffset(offset time.Duration) CheckoutOption {
	return func(s *CheckoutServiceImpl) {
		s.zone = fixedZone(offset)
	}
}

// WithOrderIDPrefix overrides the order id prefix.
func WithOrderIDPrefix(prefix string) CheckoutOption {
	return func(s *CheckoutServiceImpl) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// WithCheckoutClock replaces the clock and the random suffix source.
func WithCheckoutClock(now func() time.Time, random func() int) CheckoutOption {
	return func(s *CheckoutServiceImpl) {
		if now != nil {
			s.now = now
		}
		if random != nil {
			s.randomDigit = random
		}
	}
}

func fixedZone(offset time.Duration) *time.Location {
	return time.FixedZone("UTC"+offset.String(), int(offset.Seconds()))
}

// Checkout re-validates stock, records the order and clears the cart.
// On any failure the cart is left exactly as it was.
func (s *CheckoutServiceImpl) Checkout(ctx context.Context, cartID string) (*model.Order, error) {
	if s.carts == nil || s.orders == nil || s.products == nil {
		return nil, ErrRepositoryNotConfigured
	}
	start := time.Now()

	release, err := s.guard.Acquire(OpCart, cartID)
	if err != nil {
		metrics.RecordCheckout(time.Since(start), "in_flight")
		return nil, err
	}
	defer release()

	order, err := s.checkout(ctx, cartID)
	if err != nil {
		outcome := "error"
		if de, ok := AsDomainError(err); ok {
			outcome = string(de.Kind)
		}
		metrics.RecordCheckout(time.Since(start), outcome)
		log.Warn().Err(err).Str("cart_id", cartID).Msg("checkout rejected")
		return nil, err
	}

	total, _ := order.Total.Float64()
	metrics.RecordCheckout(time.Since(start), "success")
	metrics.RecordOrderValue(total)
	log.Info().
		Str("cart_id", cartID).
		Str("order_id", order.ID).
		Str("total", order.Total.StringFixed(2)).
		Int("items", len(order.Items)).
		Msg("checkout completed")
	return order, nil
}

func (s *CheckoutServiceImpl) checkout(ctx context.Context, cartID string) (*model.Order, error) {
	loaded, err := s.carts.Load(ctx, cartID)
	if err != nil {
		return nil, remote(err)
	}
	if loaded == nil {
		return nil, ErrCartNotFound
	}
	if loaded.IsEmpty() {
		return nil, ErrCartEmpty
	}

	rows, err := s.products.FindByIDs(ctx, referencedIDs(loaded))
	if err != nil {
		return nil, remote(err)
	}
	if failures := ValidateStock(loaded, StockFrom(rows)); len(failures) > 0 {
		return nil, ErrCheckoutRejected.WithCauses(failures)
	}

	order := s.buildOrder(loaded)
	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, remote(err)
	}

	cart := loaded.Clone()
	cart.Orders = append(cart.Orders, *order)
	cart.Items = []model.LineItem{}
	if err := s.carts.Save(ctx, cart); err != nil {
		if delErr := s.orders.Delete(ctx, order.ID); delErr != nil {
			log.Error().Err(delErr).Str("order_id", order.ID).Msg("failed to roll back order after cart save failure")
		}
		if isVersionConflict(err) {
			return nil, ErrCartConflict.Wrap(err)
		}
		return nil, remote(err)
	}
	return order, nil
}

// ValidateStock checks every line against current stock and returns one rejection per failing
// product. Composed lines need count x quantity of each flavor, simple lines need quantity of the
// base product, and every add-on needs quantity. Ids missing from stock count as sold out.
// Demand is checked per line; two lines sharing a product are not summed.
func ValidateStock(cart *model.Cart, stock StockLevels) []*DomainError {
	var failures []*DomainError
	for _, item := range cart.Items {
		if item.Composed && len(item.Flavors) > 0 {
			for _, f := range item.Flavors {
				if stock[f.ID] < f.Count*item.Quantity {
					failures = append(failures, ErrItemUnavailable.WithItem(f.Name))
				}
			}
		} else if stock[item.BaseProductID()] < item.Quantity {
			failures = append(failures, ErrItemUnavailable.WithItem(item.Name))
		}
		for _, a := range item.Addons {
			if stock[a.ID] < item.Quantity {
				failures = append(failures, ErrItemUnavailable.WithItem(a.Name))
			}
		}
	}
	return failures
}

func referencedIDs(cart *model.Cart) []string {
	seen := make(map[string]struct{})
	var ids []string
	add := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, item := range cart.Items {
		add(item.BaseProductID())
		for _, f := range item.Flavors {
			add(f.ID)
		}
		for _, a := range item.Addons {
			add(a.ID)
		}
	}
	return ids
}

func (s *CheckoutServiceImpl) buildOrder(cart *model.Cart) *model.Order {
	now := s.now()
	local := now.In(s.zone)

	items := make([]model.OrderItem, len(cart.Items))
	for i, li := range cart.Items {
		items[i] = model.NewOrderItem(li)
	}
	// Same rounding as CartService.Totals so the order matches what the cart showed.
	subtotal := cart.Subtotal().Round(2)

	return &model.Order{
		ID:          s.orderID(now),
		CartID:      cart.ID,
		Items:       items,
		Subtotal:    subtotal,
		DeliveryFee: s.deliveryFee,
		Total:       subtotal.Add(s.deliveryFee),
		Date:        local.Format(time.DateOnly),
		Time:        local.Format("15:04"),
		Status:      model.StatusPending,
		CreatedAt:   now.UTC(),
		UpdatedAt:   now.UTC(),
	}
}

// orderID is the prefix, the last six digits of the unix-millis clock and three random digits.
func (s *CheckoutServiceImpl) orderID(now time.Time) string {
	return fmt.Sprintf("%s%06d%03d", s.prefix, now.UnixMilli()%1_000_000, s.randomDigit()%1000)
}

var _ CheckoutService = (*CheckoutServiceImpl)(nil)
