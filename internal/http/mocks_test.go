//go:build !integration

package http

import (
	"context"

	"github.com/guttosm/cardapio-service/internal/domain/model"
	"github.com/guttosm/cardapio-service/internal/service"
	"github.com/stretchr/testify/mock"
)

type mockCatalogService struct{ mock.Mock }

func (m *mockCatalogService) ListProducts(ctx context.Context, filter service.ProductFilter) ([]model.Product, error) {
	args := m.Called(ctx, filter)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *mockCatalogService) Product(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.Product)
	return p, args.Error(1)
}

func (m *mockCatalogService) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]string)
	return out, args.Error(1)
}

func (m *mockCatalogService) Sizes(ctx context.Context, category string) ([]string, error) {
	args := m.Called(ctx, category)
	out, _ := args.Get(0).([]string)
	return out, args.Error(1)
}

func (m *mockCatalogService) HasAddons(ctx context.Context, product model.Product) (bool, error) {
	args := m.Called(ctx, product)
	return args.Bool(0), args.Error(1)
}

func (m *mockCatalogService) Invalidate() { m.Called() }

type mockSelectionService struct{ mock.Mock }

func (m *mockSelectionService) selection(args mock.Arguments) (*model.Selection, error) {
	sel, _ := args.Get(0).(*model.Selection)
	return sel, args.Error(1)
}

func (m *mockSelectionService) Start(ctx context.Context, productID string) (*model.Selection, error) {
	return m.selection(m.Called(ctx, productID))
}

func (m *mockSelectionService) Get(ctx context.Context, sessionID string) (*model.Selection, error) {
	return m.selection(m.Called(ctx, sessionID))
}

func (m *mockSelectionService) AddFlavor(ctx context.Context, sessionID, productID string) (*model.Selection, error) {
	return m.selection(m.Called(ctx, sessionID, productID))
}

func (m *mockSelectionService) RemoveFlavor(ctx context.Context, sessionID, productID string) (*model.Selection, error) {
	return m.selection(m.Called(ctx, sessionID, productID))
}

func (m *mockSelectionService) AddAddon(ctx context.Context, sessionID, addonID string) (*model.Selection, error) {
	return m.selection(m.Called(ctx, sessionID, addonID))
}

func (m *mockSelectionService) RemoveAddon(ctx context.Context, sessionID, addonID string) (*model.Selection, error) {
	return m.selection(m.Called(ctx, sessionID, addonID))
}

func (m *mockSelectionService) SetNotes(ctx context.Context, sessionID, notes string) (*model.Selection, error) {
	return m.selection(m.Called(ctx, sessionID, notes))
}

func (m *mockSelectionService) AppendNotePreset(ctx context.Context, sessionID, preset string) (*model.Selection, error) {
	return m.selection(m.Called(ctx, sessionID, preset))
}

func (m *mockSelectionService) Summary(ctx context.Context, sessionID string) (*service.SelectionSummary, error) {
	args := m.Called(ctx, sessionID)
	s, _ := args.Get(0).(*service.SelectionSummary)
	return s, args.Error(1)
}

func (m *mockSelectionService) Abandon(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *mockSelectionService) AddToCart(ctx context.Context, sessionID, cartID string) (*service.AddToCartResult, error) {
	args := m.Called(ctx, sessionID, cartID)
	r, _ := args.Get(0).(*service.AddToCartResult)
	return r, args.Error(1)
}

type mockCartService struct{ mock.Mock }

func (m *mockCartService) cart(args mock.Arguments) (*model.Cart, error) {
	c, _ := args.Get(0).(*model.Cart)
	return c, args.Error(1)
}

func (m *mockCartService) Create(ctx context.Context) (*model.Cart, error) {
	return m.cart(m.Called(ctx))
}

func (m *mockCartService) Get(ctx context.Context, cartID string) (*model.Cart, error) {
	return m.cart(m.Called(ctx, cartID))
}

func (m *mockCartService) Add(ctx context.Context, cartID string, item model.LineItem) (*model.Cart, service.AddOutcome, error) {
	args := m.Called(ctx, cartID, item)
	c, _ := args.Get(0).(*model.Cart)
	outcome, _ := args.Get(1).(service.AddOutcome)
	return c, outcome, args.Error(2)
}

func (m *mockCartService) Increment(ctx context.Context, cartID string, index, delta int) (*model.Cart, error) {
	return m.cart(m.Called(ctx, cartID, index, delta))
}

func (m *mockCartService) Remove(ctx context.Context, cartID string, index int) (*model.Cart, error) {
	return m.cart(m.Called(ctx, cartID, index))
}

func (m *mockCartService) Clear(ctx context.Context, cartID string) (*model.Cart, error) {
	return m.cart(m.Called(ctx, cartID))
}

func (m *mockCartService) History(ctx context.Context, cartID string) ([]model.Order, error) {
	args := m.Called(ctx, cartID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

// Totals is computed like the real service so views are realistic.
func (m *mockCartService) Totals(cart *model.Cart) service.CartTotals {
	subtotal := cart.Subtotal()
	return service.CartTotals{
		ItemCount:   cart.ItemCount(),
		Subtotal:    subtotal,
		DeliveryFee: service.DefaultDeliveryFee,
		Total:       subtotal.Add(service.DefaultDeliveryFee),
	}
}

type mockCheckoutService struct{ mock.Mock }

func (m *mockCheckoutService) Checkout(ctx context.Context, cartID string) (*model.Order, error) {
	args := m.Called(ctx, cartID)
	o, _ := args.Get(0).(*model.Order)
	return o, args.Error(1)
}

type mockProductAdminService struct{ mock.Mock }

func (m *mockProductAdminService) product(args mock.Arguments) (*model.Product, error) {
	p, _ := args.Get(0).(*model.Product)
	return p, args.Error(1)
}

func (m *mockProductAdminService) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.Product)
	return out, args.Error(1)
}

func (m *mockProductAdminService) Create(ctx context.Context, in service.ProductInput) (*model.Product, error) {
	return m.product(m.Called(ctx, in))
}

func (m *mockProductAdminService) Update(ctx context.Context, id string, in service.ProductInput) (*model.Product, error) {
	return m.product(m.Called(ctx, id, in))
}

func (m *mockProductAdminService) ToggleStatus(ctx context.Context, id string) (*model.Product, error) {
	return m.product(m.Called(ctx, id))
}

func (m *mockProductAdminService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockSettingsService struct{ mock.Mock }

func (m *mockSettingsService) Categories(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.Category)
	return out, args.Error(1)
}

func (m *mockSettingsService) AddCategory(ctx context.Context, name string) (*model.Category, error) {
	args := m.Called(ctx, name)
	out, _ := args.Get(0).(*model.Category)
	return out, args.Error(1)
}

func (m *mockSettingsService) UpdateCategory(ctx context.Context, id, name, icon string) (*model.Category, error) {
	args := m.Called(ctx, id, name, icon)
	out, _ := args.Get(0).(*model.Category)
	return out, args.Error(1)
}

func (m *mockSettingsService) DeleteCategory(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockSettingsService) RestoreDefaultCategories(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.Category)
	return out, args.Error(1)
}

func (m *mockSettingsService) Sizes(ctx context.Context) ([]model.SizeOption, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.SizeOption)
	return out, args.Error(1)
}

func (m *mockSettingsService) AddSize(ctx context.Context, name string) (*model.SizeOption, error) {
	args := m.Called(ctx, name)
	out, _ := args.Get(0).(*model.SizeOption)
	return out, args.Error(1)
}

func (m *mockSettingsService) RenameSize(ctx context.Context, id, name string) (*model.SizeOption, error) {
	args := m.Called(ctx, id, name)
	out, _ := args.Get(0).(*model.SizeOption)
	return out, args.Error(1)
}

func (m *mockSettingsService) DeleteSize(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockSettingsService) RestoreDefaultSizes(ctx context.Context) ([]model.SizeOption, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.SizeOption)
	return out, args.Error(1)
}

func (m *mockSettingsService) FlavorConfig(ctx context.Context) (model.FlavorConfig, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).(model.FlavorConfig)
	return out, args.Error(1)
}

func (m *mockSettingsService) SetMaxFlavors(ctx context.Context, max int) (model.FlavorConfig, error) {
	args := m.Called(ctx, max)
	out, _ := args.Get(0).(model.FlavorConfig)
	return out, args.Error(1)
}

func (m *mockSettingsService) RestoreDefaultFlavorConfig(ctx context.Context) (model.FlavorConfig, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).(model.FlavorConfig)
	return out, args.Error(1)
}

var (
	_ service.CatalogService      = (*mockCatalogService)(nil)
	_ service.SelectionService    = (*mockSelectionService)(nil)
	_ service.CartService         = (*mockCartService)(nil)
	_ service.CheckoutService     = (*mockCheckoutService)(nil)
	_ service.ProductAdminService = (*mockProductAdminService)(nil)
	_ service.SettingsService     = (*mockSettingsService)(nil)
)
