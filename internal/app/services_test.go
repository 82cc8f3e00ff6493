//go:build !integration

package app

import (
	"context"
	"testing"

	"github.com/guttosm/cardapio-service/internal/repository"
	"github.com/guttosm/cardapio-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeStores_InMemory(t *testing.T) {
	stores := InitializeStores(nil)

	assert.IsType(t, &repository.MemoryProductStore{}, stores.Products)
	assert.IsType(t, &repository.MemoryCartStore{}, stores.Carts)
	assert.IsType(t, &repository.MemoryOrderStore{}, stores.Orders)
	assert.IsType(t, &repository.MemorySettingsStore{}, stores.Settings)

	products, err := stores.Products.FindActive(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, products)
}

func TestDemoMenu(t *testing.T) {
	ids := map[string]bool{}
	var addons, composable int
	for _, p := range demoMenu() {
		assert.False(t, ids[p.ID], "duplicate id %s", p.ID)
		ids[p.ID] = true
		assert.True(t, p.Active)
		assert.True(t, p.InStock())
		if p.IsAddon() {
			addons++
		}
		if p.SupportsFlavors() {
			composable++
		}
	}
	assert.Positive(t, addons)
	assert.GreaterOrEqual(t, composable, 2)
}

func TestInitializeServices(t *testing.T) {
	ctx := context.Background()
	services := InitializeServices(testConfig(), InitializeStores(nil))

	require.NotNil(t, services)
	assert.NotNil(t, services.Catalog)
	assert.NotNil(t, services.Selections)
	assert.NotNil(t, services.Checkout)
	assert.NotNil(t, services.ProductAdmin)
	assert.NotNil(t, services.Settings)

	cart, err := services.Carts.Create(ctx)
	require.NoError(t, err)
	totals := services.Carts.Totals(cart)
	assert.Equal(t, "7.50", totals.DeliveryFee.StringFixed(2), "configured delivery fee is used")

	sel, err := services.Selections.Start(ctx, "1")
	require.NoError(t, err)
	assert.True(t, sel.FlavorMode)

	result, err := services.Selections.AddToCart(ctx, sel.ID, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, service.AddAppended, result.Outcome)

	order, err := services.Checkout.Checkout(ctx, cart.ID)
	require.NoError(t, err)
	assert.Regexp(t, `^PED`, order.ID)
	assert.Equal(t, "47.50", order.Total.StringFixed(2))
}

func TestInitializeServices_CatalogCacheDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.Size = 0
	cfg.Cache.SessionTTL = 0

	services := InitializeServices(cfg, InitializeStores(nil))

	products, err := services.Catalog.ListProducts(context.Background(), service.ProductFilter{Category: "bebida"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Suco de Laranja", products[0].Name)
}
